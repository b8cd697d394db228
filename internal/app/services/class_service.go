package services

import (
	"context"
	"time"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

type classStore interface {
	GetAll(ctx context.Context) ([]models.Class, error)
	GetByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) (*models.Class, error)
	Update(ctx context.Context, id int64, class *models.Class) (*models.Class, error)
	Delete(ctx context.Context, id int64) error
	Enroll(ctx context.Context, studentNumber string, classID int64) error
	Unenroll(ctx context.Context, studentNumber string, classID int64) error
	GetEnrolled(ctx context.Context, studentNumber string) ([]models.Class, error)
}

// ClassService handles the class schedule and student enrollments.
// Schedule changes are admin operations; enrollment is student self-service.
type ClassService interface {
	GetAllClasses(ctx context.Context) ([]models.Class, error)
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error)
	UpdateClass(ctx context.Context, id int64, req *dto.CreateClassRequest) (*models.Class, error)
	DeleteClass(ctx context.Context, id int64) error
	Enroll(ctx context.Context, studentNumber string, classID int64) error
	Unenroll(ctx context.Context, studentNumber string, classID int64) error
	GetEnrolledClasses(ctx context.Context, studentNumber string) ([]models.Class, error)
}

type classServiceImpl struct {
	classes classStore
}

// NewClassService creates a new class service instance
func NewClassService(classes classStore) ClassService {
	return &classServiceImpl{classes: classes}
}

// GetAllClasses returns the full schedule chronologically.
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]models.Class, error) {
	return s.classes.GetAll(ctx)
}

// CreateClass schedules a new class.
func (s *classServiceImpl) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*models.Class, error) {
	class, err := classFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.classes.Create(ctx, class)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("classID", created.ID).Msg("Class created")
	return created, nil
}

// UpdateClass changes an existing class.
func (s *classServiceImpl) UpdateClass(ctx context.Context, id int64, req *dto.CreateClassRequest) (*models.Class, error) {
	class, err := classFromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.classes.Update(ctx, id, class)
}

// DeleteClass removes a class and its enrollments.
func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	if err := s.classes.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("classID", id).Msg("Class deleted")
	return nil
}

// Enroll registers the session student in a class, at most once.
func (s *classServiceImpl) Enroll(ctx context.Context, studentNumber string, classID int64) error {
	// Existence check first so a missing class reads as 404 rather
	// than a foreign key error.
	if _, err := s.classes.GetByID(ctx, classID); err != nil {
		return err
	}
	if err := s.classes.Enroll(ctx, studentNumber, classID); err != nil {
		return err
	}
	logger.Info().Str("studentNumber", studentNumber).Int64("classID", classID).Msg("Student enrolled")
	return nil
}

// Unenroll drops the session student's enrollment.
func (s *classServiceImpl) Unenroll(ctx context.Context, studentNumber string, classID int64) error {
	if err := s.classes.Unenroll(ctx, studentNumber, classID); err != nil {
		return err
	}
	logger.Info().Str("studentNumber", studentNumber).Int64("classID", classID).Msg("Student unenrolled")
	return nil
}

// GetEnrolledClasses returns the classes the student is enrolled in.
func (s *classServiceImpl) GetEnrolledClasses(ctx context.Context, studentNumber string) ([]models.Class, error) {
	return s.classes.GetEnrolled(ctx, studentNumber)
}

func classFromRequest(req *dto.CreateClassRequest) (*models.Class, error) {
	date, err := time.Parse("2006-01-02", req.ClassDate)
	if err != nil {
		return nil, apperrors.NewInvalidRequestError("class date must be YYYY-MM-DD")
	}
	if req.DurationMinutes < 1 {
		return nil, apperrors.NewInvalidRequestError("duration must be positive")
	}
	return &models.Class{
		ClassName:       req.ClassName,
		ModuleID:        req.ModuleID,
		ClassTime:       req.ClassTime,
		ClassDate:       date,
		DurationMinutes: req.DurationMinutes,
		Location:        req.Location,
		Instructor:      req.Instructor,
	}, nil
}
