package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakeClassStore struct {
	known    map[int64]bool
	enrolled map[string]bool
}

func enrollKey(studentNumber string, classID int64) string {
	return fmt.Sprintf("%s/%d", studentNumber, classID)
}

func (f *fakeClassStore) GetAll(ctx context.Context) ([]models.Class, error) {
	return []models.Class{}, nil
}

func (f *fakeClassStore) GetByID(ctx context.Context, id int64) (*models.Class, error) {
	if !f.known[id] {
		return nil, apperrors.ErrClassNotFound
	}
	return &models.Class{ID: id}, nil
}

func (f *fakeClassStore) Create(ctx context.Context, class *models.Class) (*models.Class, error) {
	class.ID = 1
	return class, nil
}

func (f *fakeClassStore) Update(ctx context.Context, id int64, class *models.Class) (*models.Class, error) {
	class.ID = id
	return class, nil
}

func (f *fakeClassStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeClassStore) Enroll(ctx context.Context, studentNumber string, classID int64) error {
	key := enrollKey(studentNumber, classID)
	if f.enrolled[key] {
		return apperrors.ErrAlreadyEnrolled
	}
	if f.enrolled == nil {
		f.enrolled = make(map[string]bool)
	}
	f.enrolled[key] = true
	return nil
}

func (f *fakeClassStore) Unenroll(ctx context.Context, studentNumber string, classID int64) error {
	key := enrollKey(studentNumber, classID)
	if !f.enrolled[key] {
		return apperrors.ErrEnrollmentNotFound
	}
	delete(f.enrolled, key)
	return nil
}

func (f *fakeClassStore) GetEnrolled(ctx context.Context, studentNumber string) ([]models.Class, error) {
	return []models.Class{}, nil
}

func TestEnrollInMissingClass(t *testing.T) {
	svc := NewClassService(&fakeClassStore{known: map[int64]bool{}})

	err := svc.Enroll(context.Background(), "111111111", 9)
	assert.ErrorIs(t, err, apperrors.ErrClassNotFound)
}

func TestEnrollIsUniquePerStudent(t *testing.T) {
	store := &fakeClassStore{known: map[int64]bool{1: true}, enrolled: map[string]bool{}}
	svc := NewClassService(store)

	assert.NoError(t, svc.Enroll(context.Background(), "111111111", 1))
	assert.ErrorIs(t, svc.Enroll(context.Background(), "111111111", 1), apperrors.ErrAlreadyEnrolled)
}

func TestUnenrollWithoutEnrollment(t *testing.T) {
	store := &fakeClassStore{known: map[int64]bool{1: true}, enrolled: map[string]bool{}}
	svc := NewClassService(store)

	err := svc.Unenroll(context.Background(), "111111111", 1)
	assert.ErrorIs(t, err, apperrors.ErrEnrollmentNotFound)
}

func TestCreateClassValidatesDate(t *testing.T) {
	svc := NewClassService(&fakeClassStore{})

	_, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{
		ClassName:       "Algorithms",
		ClassTime:       "10:00",
		ClassDate:       "01-02-2026",
		DurationMinutes: 90,
		Location:        "Lab 2",
		Instructor:      "Dr. Mokoena",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

	created, err := svc.CreateClass(context.Background(), &dto.CreateClassRequest{
		ClassName:       "Algorithms",
		ClassTime:       "10:00",
		ClassDate:       "2026-02-01",
		DurationMinutes: 90,
		Location:        "Lab 2",
		Instructor:      "Dr. Mokoena",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Algorithms", created.ClassName)
	assert.Equal(t, 2026, created.ClassDate.Year())
}
