package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type groupStore interface {
	GetAll(ctx context.Context) ([]models.Group, error)
	Create(ctx context.Context, group *models.Group) (*models.Group, error)
	GetCreator(ctx context.Context, id int64) (string, error)
	Update(ctx context.Context, id int64, group *models.Group) (*models.Group, error)
	Delete(ctx context.Context, id int64) error
}

// GroupService handles student group operations. Updates and deletes are
// restricted to the group's creator.
type GroupService interface {
	GetAllGroups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, creator string, req *dto.CreateGroupRequest) (*models.Group, error)
	UpdateGroup(ctx context.Context, id int64, actor string, req *dto.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64, actor string) error
}

type groupServiceImpl struct {
	groups groupStore
}

// NewGroupService creates a new group service instance
func NewGroupService(groups groupStore) GroupService {
	return &groupServiceImpl{groups: groups}
}

// GetAllGroups returns every group with creator display names.
func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	return s.groups.GetAll(ctx)
}

// CreateGroup creates a group owned by the session student. New groups
// start with a size of one, counting the creator.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, creator string, req *dto.CreateGroupRequest) (*models.Group, error) {
	if validation.IsBlank(req.GroupName) {
		return nil, apperrors.NewInvalidRequestError("group name is required")
	}
	if req.MaxSize < 1 {
		return nil, apperrors.NewInvalidRequestError("max size must be at least 1")
	}

	group, err := s.groups.Create(ctx, &models.Group{
		GroupName:        req.GroupName,
		GroupDescription: req.GroupDescription,
		GroupSize:        1,
		MaxSize:          req.MaxSize,
		CreatedBy:        creator,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("groupID", group.ID).Str("createdBy", creator).Msg("Group created")
	return group, nil
}

// UpdateGroup applies changes after verifying the actor created the group.
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, id int64, actor string, req *dto.UpdateGroupRequest) (*models.Group, error) {
	if validation.IsBlank(req.GroupName) {
		return nil, apperrors.NewInvalidRequestError("group name is required")
	}
	if req.MaxSize < 1 {
		return nil, apperrors.NewInvalidRequestError("max size must be at least 1")
	}

	if err := s.requireCreator(ctx, id, actor); err != nil {
		return nil, err
	}

	return s.groups.Update(ctx, id, &models.Group{
		GroupName:        req.GroupName,
		GroupDescription: req.GroupDescription,
		MaxSize:          req.MaxSize,
	})
}

// DeleteGroup removes a group after verifying ownership.
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id int64, actor string) error {
	if err := s.requireCreator(ctx, id, actor); err != nil {
		return err
	}
	if err := s.groups.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("groupID", id).Str("deletedBy", actor).Msg("Group deleted")
	return nil
}

// requireCreator checks existence first so a missing group reads as 404
// rather than 403.
func (s *groupServiceImpl) requireCreator(ctx context.Context, id int64, actor string) error {
	creator, err := s.groups.GetCreator(ctx, id)
	if err != nil {
		return err
	}
	if creator != actor {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
