package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

type ratingStore interface {
	GetAll(ctx context.Context) ([]models.Rating, error)
	Create(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	Average(ctx context.Context) (float64, int64, error)
}

// RatingService handles platform feedback ratings from either principal.
type RatingService interface {
	GetAllRatings(ctx context.Context) ([]models.Rating, error)
	RateAsStudent(ctx context.Context, studentNumber string, req *dto.CreateRatingRequest) (*models.Rating, error)
	RateAsAdmin(ctx context.Context, adminID int64, req *dto.CreateRatingRequest) (*models.Rating, error)
	AverageRating(ctx context.Context) (float64, int64, error)
}

type ratingServiceImpl struct {
	ratings ratingStore
}

// NewRatingService creates a new rating service instance
func NewRatingService(ratings ratingStore) RatingService {
	return &ratingServiceImpl{ratings: ratings}
}

// GetAllRatings returns every rating with rator display names.
func (s *ratingServiceImpl) GetAllRatings(ctx context.Context) ([]models.Rating, error) {
	return s.ratings.GetAll(ctx)
}

// RateAsStudent records a rating submitted by the session student.
func (s *ratingServiceImpl) RateAsStudent(ctx context.Context, studentNumber string, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if err := validateRatingValue(req.RatingValue); err != nil {
		return nil, err
	}
	created, err := s.ratings.Create(ctx, &models.Rating{
		RatorType:         models.TargetStudent,
		RatorStudent:      &studentNumber,
		RatingValue:       req.RatingValue,
		RatingDescription: req.RatingDescription,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Str("studentNumber", studentNumber).Int("value", req.RatingValue).Msg("Rating submitted")
	return created, nil
}

// RateAsAdmin records a rating submitted by the session admin.
func (s *ratingServiceImpl) RateAsAdmin(ctx context.Context, adminID int64, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if err := validateRatingValue(req.RatingValue); err != nil {
		return nil, err
	}
	created, err := s.ratings.Create(ctx, &models.Rating{
		RatorType:         models.TargetAdmin,
		RatorAdmin:        &adminID,
		RatingValue:       req.RatingValue,
		RatingDescription: req.RatingDescription,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("adminID", adminID).Int("value", req.RatingValue).Msg("Rating submitted")
	return created, nil
}

// AverageRating returns the mean rating and the number of ratings.
func (s *ratingServiceImpl) AverageRating(ctx context.Context) (float64, int64, error) {
	return s.ratings.Average(ctx)
}

func validateRatingValue(value int) error {
	if value < 0 || value > 5 {
		return apperrors.ErrInvalidRating
	}
	return nil
}
