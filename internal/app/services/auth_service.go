package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/auth"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/session"
	"github.com/jsj/linkup/internal/pkg/validation"
)

// studentAccountStore is the slice of StudentRepository the auth flow needs.
type studentAccountStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByNumber(ctx context.Context, studentNumber string) (*models.Student, error)
}

// adminAccountStore is the slice of AdminRepository the auth flow needs.
type adminAccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// AuthService handles registration, login and logout for both principal kinds.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error)
	LoginStudent(ctx context.Context, req *dto.LoginRequest) (string, *models.Student, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (string, *models.Admin, error)
	Logout(token string)
}

type authServiceImpl struct {
	students studentAccountStore
	admins   adminAccountStore
	sessions *session.Store
}

// NewAuthService creates a new auth service instance
func NewAuthService(students studentAccountStore, admins adminAccountStore, sessions *session.Store) AuthService {
	return &authServiceImpl{
		students: students,
		admins:   admins,
		sessions: sessions,
	}
}

// Register validates and creates a new student account. The returned
// student never carries the password hash.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Student, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	student := &models.Student{
		StudentNumber: strings.TrimSpace(req.StudentNumber),
		Name:          strings.TrimSpace(req.Name),
		Surname:       strings.TrimSpace(req.Surname),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:  hash,
		CourseID:      req.CourseID,
		YearOfStudy:   req.YearOfStudy,
		FacultyID:     req.FacultyID,
		CampusID:      req.CampusID,
		PhoneNumber:   req.PhoneNumber,
	}

	// The unique constraints on student_number and email are the real
	// guard; duplicates surface as ErrStudentExists.
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Str("studentNumber", student.StudentNumber).Msg("Student registered")

	// The store may keep the pointer it was given, so scrub the hash
	// on a copy rather than the stored record.
	created := *student
	created.PasswordHash = ""
	return &created, nil
}

// LoginStudent authenticates a student and issues a session token.
func (s *authServiceImpl) LoginStudent(ctx context.Context, req *dto.LoginRequest) (string, *models.Student, error) {
	student, err := s.students.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(student.PasswordHash, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token := s.sessions.Issue(session.KindStudent, session.Principal{
		Kind:          session.KindStudent,
		StudentNumber: student.StudentNumber,
		Email:         student.Email,
		Name:          student.Name,
		Surname:       student.Surname,
	})

	logger.Info().Str("studentNumber", student.StudentNumber).Msg("Student logged in")
	student.PasswordHash = ""
	return token, student, nil
}

// LoginAdmin authenticates an admin and issues a session token in the
// admin namespace.
func (s *authServiceImpl) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (string, *models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token := s.sessions.Issue(session.KindAdmin, session.Principal{
		Kind:    session.KindAdmin,
		AdminID: admin.AdminID,
		Email:   admin.Email,
		Name:    admin.Name,
		Surname: admin.Surname,
	})

	logger.Info().Int64("adminID", admin.AdminID).Msg("Admin logged in")
	admin.PasswordHash = ""
	return token, admin, nil
}

// Logout revokes a session token. Unknown tokens are a no-op so logout
// is always safe to repeat.
func (s *authServiceImpl) Logout(token string) {
	s.sessions.Revoke(token)
}

func validateRegistration(req *dto.RegisterRequest) error {
	if !validation.IsValidStudentNumber(strings.TrimSpace(req.StudentNumber)) {
		return apperrors.NewInvalidRequestError("student number must be exactly 9 digits")
	}
	if !validation.IsValidEmail(strings.TrimSpace(req.Email)) {
		return apperrors.NewInvalidRequestError("invalid email address")
	}
	if validation.IsBlank(req.Name) || validation.IsBlank(req.Surname) {
		return apperrors.NewInvalidRequestError("name and surname are required")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return apperrors.NewInvalidRequestError("password must be at least 6 characters")
	}
	if !validation.IsValidYearOfStudy(req.YearOfStudy) {
		return apperrors.NewInvalidRequestError("invalid year of study")
	}
	return nil
}
