package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakeGroupStore struct {
	creator   string
	missing   bool
	created   *models.Group
	updated   *models.Group
	deletedID int64
}

func (f *fakeGroupStore) GetAll(ctx context.Context) ([]models.Group, error) {
	return []models.Group{}, nil
}

func (f *fakeGroupStore) Create(ctx context.Context, group *models.Group) (*models.Group, error) {
	group.ID = 1
	f.created = group
	return group, nil
}

func (f *fakeGroupStore) GetCreator(ctx context.Context, id int64) (string, error) {
	if f.missing {
		return "", apperrors.ErrGroupNotFound
	}
	return f.creator, nil
}

func (f *fakeGroupStore) Update(ctx context.Context, id int64, group *models.Group) (*models.Group, error) {
	group.ID = id
	f.updated = group
	return group, nil
}

func (f *fakeGroupStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func TestCreateGroupStartsWithSizeOne(t *testing.T) {
	store := &fakeGroupStore{}
	svc := NewGroupService(store)

	group, err := svc.CreateGroup(context.Background(), "111111111", &dto.CreateGroupRequest{
		GroupName: "Study Group",
		MaxSize:   10,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, group.GroupSize)
	assert.Equal(t, "111111111", group.CreatedBy)
}

func TestCreateGroupValidatesInput(t *testing.T) {
	svc := NewGroupService(&fakeGroupStore{})

	_, err := svc.CreateGroup(context.Background(), "111111111", &dto.CreateGroupRequest{
		GroupName: "   ",
		MaxSize:   10,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

	_, err = svc.CreateGroup(context.Background(), "111111111", &dto.CreateGroupRequest{
		GroupName: "Study Group",
		MaxSize:   0,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestUpdateGroupRequiresCreator(t *testing.T) {
	store := &fakeGroupStore{creator: "111111111"}
	svc := NewGroupService(store)

	_, err := svc.UpdateGroup(context.Background(), 1, "222222222", &dto.UpdateGroupRequest{
		GroupName: "Renamed",
		MaxSize:   5,
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Nil(t, store.updated)
}

func TestUpdateMissingGroupReadsNotFound(t *testing.T) {
	svc := NewGroupService(&fakeGroupStore{missing: true})

	_, err := svc.UpdateGroup(context.Background(), 99, "111111111", &dto.UpdateGroupRequest{
		GroupName: "Renamed",
		MaxSize:   5,
	})
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
}

func TestDeleteGroupByCreator(t *testing.T) {
	store := &fakeGroupStore{creator: "111111111"}
	svc := NewGroupService(store)

	err := svc.DeleteGroup(context.Background(), 3, "111111111")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), store.deletedID)
}
