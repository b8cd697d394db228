package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type notificationStore interface {
	GetForStudent(ctx context.Context, studentNumber string) ([]models.Notification, error)
	GetForAdmin(ctx context.Context, adminID int64) ([]models.Notification, error)
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
}

// NotificationService handles targeted notifications. Every notification
// addresses exactly one principal, never both.
type NotificationService interface {
	GetStudentNotifications(ctx context.Context, studentNumber string) ([]models.Notification, error)
	GetAdminNotifications(ctx context.Context, adminID int64) ([]models.Notification, error)
	CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error)
}

type notificationServiceImpl struct {
	notifications notificationStore
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notifications notificationStore) NotificationService {
	return &notificationServiceImpl{notifications: notifications}
}

// GetStudentNotifications returns notifications addressed to a student.
func (s *notificationServiceImpl) GetStudentNotifications(ctx context.Context, studentNumber string) ([]models.Notification, error) {
	return s.notifications.GetForStudent(ctx, studentNumber)
}

// GetAdminNotifications returns notifications addressed to an admin.
func (s *notificationServiceImpl) GetAdminNotifications(ctx context.Context, adminID int64) ([]models.Notification, error) {
	return s.notifications.GetForAdmin(ctx, adminID)
}

// CreateNotification validates target exclusivity and stores the
// notification. The target column matching TargetType must be set and
// the other must be empty.
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if validation.IsBlank(req.Name) {
		return nil, apperrors.NewInvalidRequestError("name is required")
	}

	targetType := models.TargetType(req.TargetType)
	switch targetType {
	case models.TargetStudent:
		if req.TargetStudent == nil || !validation.IsValidStudentNumber(*req.TargetStudent) {
			return nil, apperrors.ErrInvalidTarget
		}
		if req.TargetAdmin != nil {
			return nil, apperrors.ErrInvalidTarget
		}
	case models.TargetAdmin:
		if req.TargetAdmin == nil {
			return nil, apperrors.ErrInvalidTarget
		}
		if req.TargetStudent != nil {
			return nil, apperrors.ErrInvalidTarget
		}
	default:
		return nil, apperrors.NewInvalidRequestError("target type must be student or admin")
	}

	created, err := s.notifications.Create(ctx, &models.Notification{
		Name:          req.Name,
		Description:   req.Description,
		TargetType:    targetType,
		TargetStudent: req.TargetStudent,
		TargetAdmin:   req.TargetAdmin,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("notificationID", created.ID).Str("targetType", string(targetType)).Msg("Notification created")
	return created, nil
}
