package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakeNotificationStore struct {
	created *models.Notification
}

func (f *fakeNotificationStore) GetForStudent(ctx context.Context, studentNumber string) ([]models.Notification, error) {
	return []models.Notification{}, nil
}

func (f *fakeNotificationStore) GetForAdmin(ctx context.Context, adminID int64) ([]models.Notification, error) {
	return []models.Notification{}, nil
}

func (f *fakeNotificationStore) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	n.ID = 1
	f.created = n
	return n, nil
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func TestCreateNotificationForStudent(t *testing.T) {
	store := &fakeNotificationStore{}
	svc := NewNotificationService(store)

	created, err := svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:          "Exam schedule",
		TargetType:    "student",
		TargetStudent: strPtr("111111111"),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.TargetStudent, created.TargetType)
	assert.Equal(t, "111111111", *created.TargetStudent)
	assert.Nil(t, created.TargetAdmin)
}

func TestCreateNotificationTargetExclusivity(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})

	// student type with admin target set
	_, err := svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:          "n",
		TargetType:    "student",
		TargetStudent: strPtr("111111111"),
		TargetAdmin:   i64Ptr(1),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)

	// student type with no student target
	_, err = svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:       "n",
		TargetType: "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)

	// admin type with student target set
	_, err = svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:          "n",
		TargetType:    "admin",
		TargetAdmin:   i64Ptr(1),
		TargetStudent: strPtr("111111111"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)

	// malformed student number
	_, err = svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:          "n",
		TargetType:    "student",
		TargetStudent: strPtr("12345"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)
}

func TestCreateNotificationRejectsUnknownTargetType(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{})

	_, err := svc.CreateNotification(context.Background(), &dto.CreateNotificationRequest{
		Name:       "n",
		TargetType: "everyone",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}
