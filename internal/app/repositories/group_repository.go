package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// GroupRepository handles group database operations
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all groups with creator display names, newest first.
func (r *GroupRepository) GetAll(ctx context.Context) ([]models.Group, error) {
	const query = `
		SELECT g.id, g.group_name, g.group_description, g.group_size, g.max_size,
		       g.created_by, g.created_at, s.name, s.surname
		FROM groups g
		LEFT JOIN students s ON g.created_by = s.student_number
		ORDER BY g.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying groups")
		return nil, fmt.Errorf("error querying groups: %w", err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var group models.Group
		err := rows.Scan(
			&group.ID, &group.GroupName, &group.GroupDescription, &group.GroupSize,
			&group.MaxSize, &group.CreatedBy, &group.CreatedAt,
			&group.CreatorName, &group.CreatorSurname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, group)
	}
	return groups, rows.Err()
}

// Create inserts a new group owned by the given student.
func (r *GroupRepository) Create(ctx context.Context, group *models.Group) (*models.Group, error) {
	sql, args, err := r.sb.Insert("groups").
		Columns("group_name", "group_description", "max_size", "created_by").
		Values(group.GroupName, group.GroupDescription, group.MaxSize, group.CreatedBy).
		Suffix("RETURNING id, group_name, group_description, group_size, max_size, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create group query: %w", err)
	}

	created := &models.Group{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.GroupName, &created.GroupDescription, &created.GroupSize,
		&created.MaxSize, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating group")
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	return created, nil
}

// GetCreator returns the creator of a group, or ErrGroupNotFound.
func (r *GroupRepository) GetCreator(ctx context.Context, id int64) (string, error) {
	var createdBy string
	err := r.db.QueryRow(ctx, "SELECT created_by FROM groups WHERE id = $1", id).Scan(&createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error fetching group creator")
		return "", fmt.Errorf("error fetching group creator: %w", err)
	}
	return createdBy, nil
}

// Update changes a group's mutable fields.
func (r *GroupRepository) Update(ctx context.Context, id int64, group *models.Group) (*models.Group, error) {
	sql, args, err := r.sb.Update("groups").
		Set("group_name", group.GroupName).
		Set("group_description", group.GroupDescription).
		Set("max_size", group.MaxSize).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, group_name, group_description, group_size, max_size, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update group query: %w", err)
	}

	updated := &models.Group{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.GroupName, &updated.GroupDescription, &updated.GroupSize,
		&updated.MaxSize, &updated.CreatedBy, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error updating group")
		return nil, fmt.Errorf("error updating group: %w", err)
	}
	return updated, nil
}

// Delete removes a group.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM groups WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrGroupNotFound
		}
		logger.Error().Err(err).Int64("groupID", id).Msg("Error deleting group")
		return fmt.Errorf("error deleting group: %w", err)
	}
	return nil
}
