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

// LikeRepository handles post like database operations
type LikeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create records a like. The unique (post, student) constraint maps a
// second like from the same student to ErrAlreadyLiked.
func (r *LikeRepository) Create(ctx context.Context, postID int64, studentNumber string) (*models.Like, error) {
	sql, args, err := r.sb.Insert("likes").
		Columns("post_id", "student_number").
		Values(postID, studentNumber).
		Suffix("RETURNING id, post_id, student_number, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create like query: %w", err)
	}

	like := &models.Like{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&like.ID, &like.PostID, &like.StudentNumber, &like.CreatedAt,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyLiked
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", postID).Str("studentNumber", studentNumber).Msg("Error creating like")
		return nil, fmt.Errorf("error creating like: %w", err)
	}
	return like, nil
}

// Delete removes a student's like from a post, failing with
// ErrLikeNotFound when there was none.
func (r *LikeRepository) Delete(ctx context.Context, postID int64, studentNumber string) error {
	tag, err := r.db.Exec(ctx,
		"DELETE FROM likes WHERE post_id = $1 AND student_number = $2",
		postID, studentNumber)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Str("studentNumber", studentNumber).Msg("Error deleting like")
		return fmt.Errorf("error deleting like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrLikeNotFound
	}
	return nil
}
