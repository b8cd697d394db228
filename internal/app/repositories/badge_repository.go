package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/dberrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// BadgeRepository handles badge database operations
type BadgeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBadgeRepository creates a new BadgeRepository
func NewBadgeRepository(db *pgxpool.Pool) *BadgeRepository {
	return &BadgeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetForStudent retrieves a student's badges, newest first.
func (r *BadgeRepository) GetForStudent(ctx context.Context, studentNumber string) ([]models.Badge, error) {
	sql, args, err := r.sb.Select("id", "badge_name", "description", "student_number", "awarded_at").
		From("badges").
		Where(squirrel.Eq{"student_number": studentNumber}).
		OrderBy("awarded_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build badges query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error querying badges")
		return nil, fmt.Errorf("error querying badges: %w", err)
	}
	defer rows.Close()

	badges := []models.Badge{}
	for rows.Next() {
		var badge models.Badge
		err := rows.Scan(&badge.ID, &badge.BadgeName, &badge.Description, &badge.StudentNumber, &badge.AwardedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning badge row: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

// Create awards a badge to a student.
func (r *BadgeRepository) Create(ctx context.Context, badge *models.Badge) (*models.Badge, error) {
	sql, args, err := r.sb.Insert("badges").
		Columns("badge_name", "description", "student_number").
		Values(badge.BadgeName, badge.Description, badge.StudentNumber).
		Suffix("RETURNING id, badge_name, description, student_number, awarded_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create badge query: %w", err)
	}

	created := &models.Badge{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.BadgeName, &created.Description,
		&created.StudentNumber, &created.AwardedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentNumber", badge.StudentNumber).Msg("Error creating badge")
		return nil, fmt.Errorf("error creating badge: %w", err)
	}
	return created, nil
}
