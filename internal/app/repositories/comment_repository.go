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
	"github.com/jsj/linkup/internal/pkg/dberrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// CommentRepository handles post comment database operations
type CommentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetForPost retrieves a post's comments oldest first, with author names.
func (r *CommentRepository) GetForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	const query = `
		SELECT c.id, c.post_id, c.student_number, c.content, c.created_at, c.updated_at,
		       s.name, s.surname
		FROM comments c
		LEFT JOIN students s ON c.student_number = s.student_number
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		logger.Error().Err(err).Int64("postID", postID).Msg("Error querying comments")
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.StudentNumber, &comment.Content,
			&comment.CreatedAt, &comment.UpdatedAt,
			&comment.AuthorName, &comment.AuthorSurname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Create inserts a new comment on a post.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	sql, args, err := r.sb.Insert("comments").
		Columns("post_id", "student_number", "content").
		Values(comment.PostID, comment.StudentNumber, comment.Content).
		Suffix("RETURNING id, post_id, student_number, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create comment query: %w", err)
	}

	created := &models.Comment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.PostID, &created.StudentNumber, &created.Content,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", comment.PostID).Msg("Error creating comment")
		return nil, fmt.Errorf("error creating comment: %w", err)
	}
	return created, nil
}

// GetAuthor returns the author of a comment, or ErrCommentNotFound.
func (r *CommentRepository) GetAuthor(ctx context.Context, id int64) (string, error) {
	var studentNumber string
	err := r.db.QueryRow(ctx, "SELECT student_number FROM comments WHERE id = $1", id).Scan(&studentNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrCommentNotFound
		}
		logger.Error().Err(err).Int64("commentID", id).Msg("Error fetching comment author")
		return "", fmt.Errorf("error fetching comment author: %w", err)
	}
	return studentNumber, nil
}

// Update replaces a comment's content and refreshes updated_at.
func (r *CommentRepository) Update(ctx context.Context, id int64, content string) (*models.Comment, error) {
	sql, args, err := r.sb.Update("comments").
		Set("content", content).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, post_id, student_number, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update comment query: %w", err)
	}

	updated := &models.Comment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.PostID, &updated.StudentNumber, &updated.Content,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		logger.Error().Err(err).Int64("commentID", id).Msg("Error updating comment")
		return nil, fmt.Errorf("error updating comment: %w", err)
	}
	return updated, nil
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM comments WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrCommentNotFound
		}
		logger.Error().Err(err).Int64("commentID", id).Msg("Error deleting comment")
		return fmt.Errorf("error deleting comment: %w", err)
	}
	return nil
}
