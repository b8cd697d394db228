package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type badgeStore interface {
	GetForStudent(ctx context.Context, studentNumber string) ([]models.Badge, error)
	Create(ctx context.Context, badge *models.Badge) (*models.Badge, error)
}

// BadgeService handles badge awards. Awarding is admin-only; students
// read their own badges.
type BadgeService interface {
	GetBadges(ctx context.Context, studentNumber string) ([]models.Badge, error)
	AwardBadge(ctx context.Context, req *dto.AwardBadgeRequest) (*models.Badge, error)
}

type badgeServiceImpl struct {
	badges badgeStore
}

// NewBadgeService creates a new badge service instance
func NewBadgeService(badges badgeStore) BadgeService {
	return &badgeServiceImpl{badges: badges}
}

// GetBadges returns a student's badges, newest first.
func (s *badgeServiceImpl) GetBadges(ctx context.Context, studentNumber string) ([]models.Badge, error) {
	return s.badges.GetForStudent(ctx, studentNumber)
}

// AwardBadge grants a badge to a student. Badges are append-only; there
// is no revoke.
func (s *badgeServiceImpl) AwardBadge(ctx context.Context, req *dto.AwardBadgeRequest) (*models.Badge, error) {
	if validation.IsBlank(req.BadgeName) {
		return nil, apperrors.NewInvalidRequestError("badge name is required")
	}
	if !validation.IsValidStudentNumber(req.StudentNumber) {
		return nil, apperrors.NewInvalidRequestError("student number must be exactly 9 digits")
	}

	badge, err := s.badges.Create(ctx, &models.Badge{
		BadgeName:     req.BadgeName,
		Description:   req.Description,
		StudentNumber: req.StudentNumber,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Str("studentNumber", badge.StudentNumber).Str("badge", badge.BadgeName).Msg("Badge awarded")
	return badge, nil
}
