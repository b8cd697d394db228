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

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const notificationColumns = "id, name, description, target_type, target_student, target_admin, created_at"

// GetForStudent retrieves notifications addressed to a student, newest first.
func (r *NotificationRepository) GetForStudent(ctx context.Context, studentNumber string) ([]models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns).
		From("notifications").
		Where(squirrel.Eq{"target_type": models.TargetStudent, "target_student": studentNumber}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notifications query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// GetForAdmin retrieves notifications addressed to an admin, newest first.
func (r *NotificationRepository) GetForAdmin(ctx context.Context, adminID int64) ([]models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns).
		From("notifications").
		Where(squirrel.Eq{"target_type": models.TargetAdmin, "target_admin": adminID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notifications query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// Create inserts a notification. The exclusivity check constraint rejects
// rows whose target columns disagree with target_type.
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("name", "description", "target_type", "target_student", "target_admin").
		Values(n.Name, n.Description, n.TargetType, n.TargetStudent, n.TargetAdmin).
		Suffix("RETURNING " + notificationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create notification query: %w", err)
	}

	created := &models.Notification{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.Name, &created.Description, &created.TargetType,
		&created.TargetStudent, &created.TargetAdmin, &created.CreatedAt,
	)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return nil, apperrors.ErrInvalidTarget
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrResourceNotFound
		}
		logger.Error().Err(err).Msg("Error creating notification")
		return nil, fmt.Errorf("error creating notification: %w", err)
	}
	return created, nil
}

func (r *NotificationRepository) query(ctx context.Context, sql string, args ...interface{}) ([]models.Notification, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying notifications")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.Name, &n.Description, &n.TargetType, &n.TargetStudent, &n.TargetAdmin, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
