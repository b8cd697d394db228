package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakeRatingStore struct {
	created *models.Rating
}

func (f *fakeRatingStore) GetAll(ctx context.Context) ([]models.Rating, error) {
	return []models.Rating{}, nil
}

func (f *fakeRatingStore) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	rating.ID = 1
	f.created = rating
	return rating, nil
}

func (f *fakeRatingStore) Average(ctx context.Context) (float64, int64, error) {
	return 4.5, 2, nil
}

func TestRateAsStudentSetsRatorFields(t *testing.T) {
	store := &fakeRatingStore{}
	svc := NewRatingService(store)

	created, err := svc.RateAsStudent(context.Background(), "111111111", &dto.CreateRatingRequest{RatingValue: 4})
	assert.NoError(t, err)
	assert.Equal(t, models.TargetStudent, created.RatorType)
	assert.Equal(t, "111111111", *created.RatorStudent)
	assert.Nil(t, created.RatorAdmin)
}

func TestRateAsAdminSetsRatorFields(t *testing.T) {
	store := &fakeRatingStore{}
	svc := NewRatingService(store)

	created, err := svc.RateAsAdmin(context.Background(), 7, &dto.CreateRatingRequest{RatingValue: 0})
	assert.NoError(t, err)
	assert.Equal(t, models.TargetAdmin, created.RatorType)
	assert.Equal(t, int64(7), *created.RatorAdmin)
	assert.Nil(t, created.RatorStudent)
}

func TestRatingValueBounds(t *testing.T) {
	svc := NewRatingService(&fakeRatingStore{})

	for _, value := range []int{0, 1, 5} {
		_, err := svc.RateAsStudent(context.Background(), "111111111", &dto.CreateRatingRequest{RatingValue: value})
		assert.NoError(t, err)
	}

	for _, value := range []int{-1, 6, 100} {
		_, err := svc.RateAsStudent(context.Background(), "111111111", &dto.CreateRatingRequest{RatingValue: value})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRating, value)
	}
}

func TestAverageRating(t *testing.T) {
	svc := NewRatingService(&fakeRatingStore{})

	avg, count, err := svc.AverageRating(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, int64(2), count)
}
