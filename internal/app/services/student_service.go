package services

import (
	"context"
	"strings"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type studentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByNumber(ctx context.Context, studentNumber string) (*models.Student, error)
	Update(ctx context.Context, studentNumber string, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, studentNumber string) error
	Search(ctx context.Context, query string) ([]models.Student, error)
}

// StudentService handles student directory and profile operations.
type StudentService interface {
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, studentNumber string) (*models.Student, error)
	UpdateProfile(ctx context.Context, studentNumber string, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, studentNumber string) error
	SearchStudents(ctx context.Context, query string) ([]models.Student, error)
}

type studentServiceImpl struct {
	students studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// GetAllStudents returns the full student directory without password hashes.
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		students[i].PasswordHash = ""
	}
	return students, nil
}

// GetStudent returns a single student profile.
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentNumber string) (*models.Student, error) {
	student, err := s.students.GetByNumber(ctx, studentNumber)
	if err != nil {
		return nil, err
	}
	student.PasswordHash = ""
	return student, nil
}

// UpdateProfile applies self-service profile changes for the session owner.
func (s *studentServiceImpl) UpdateProfile(ctx context.Context, studentNumber string, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if validation.IsBlank(req.Name) || validation.IsBlank(req.Surname) {
		return nil, apperrors.NewInvalidRequestError("name and surname are required")
	}
	if !validation.IsValidEmail(strings.TrimSpace(req.Email)) {
		return nil, apperrors.NewInvalidRequestError("invalid email address")
	}
	if !validation.IsValidYearOfStudy(req.YearOfStudy) {
		return nil, apperrors.NewInvalidRequestError("invalid year of study")
	}

	updated, err := s.students.Update(ctx, studentNumber, &models.Student{
		Name:        strings.TrimSpace(req.Name),
		Surname:     strings.TrimSpace(req.Surname),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber: req.PhoneNumber,
		YearOfStudy: req.YearOfStudy,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("studentNumber", studentNumber).Msg("Student profile updated")
	updated.PasswordHash = ""
	return updated, nil
}

// DeleteStudent removes a student account. Admin only at the route level.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentNumber string) error {
	if err := s.students.Delete(ctx, studentNumber); err != nil {
		return err
	}
	logger.Info().Str("studentNumber", studentNumber).Msg("Student deleted")
	return nil
}

// SearchStudents runs a directory search. Blank queries return an empty
// result instead of the whole table.
func (s *studentServiceImpl) SearchStudents(ctx context.Context, query string) ([]models.Student, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Student{}, nil
	}
	return s.students.Search(ctx, query)
}
