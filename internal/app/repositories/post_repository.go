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

// PostRepository handles post database operations
type PostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all posts newest first, with author names and live
// like/comment counts.
func (r *PostRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	const query = `
		SELECT p.id, p.title, p.caption, p.created_by, p.created_at,
		       s.name, s.surname,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		LEFT JOIN students s ON p.created_by = s.student_number
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying posts")
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID, &post.Title, &post.Caption, &post.CreatedBy, &post.CreatedAt,
			&post.CreatorName, &post.CreatorSurname,
			&post.LikeCount, &post.CommentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Create inserts a new post authored by the given student.
func (r *PostRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	sql, args, err := r.sb.Insert("posts").
		Columns("title", "caption", "created_by").
		Values(post.Title, post.Caption, post.CreatedBy).
		Suffix("RETURNING id, title, caption, created_by, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create post query: %w", err)
	}

	created := &models.Post{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.Title, &created.Caption, &created.CreatedBy, &created.CreatedAt,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating post")
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return created, nil
}

// GetCreator returns the author of a post, or ErrPostNotFound.
func (r *PostRepository) GetCreator(ctx context.Context, id int64) (string, error) {
	var createdBy string
	err := r.db.QueryRow(ctx, "SELECT created_by FROM posts WHERE id = $1", id).Scan(&createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error fetching post creator")
		return "", fmt.Errorf("error fetching post creator: %w", err)
	}
	return createdBy, nil
}

// Exists reports whether a post with the given id exists.
func (r *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Int64("postID", id).Msg("Error checking post existence")
		return false, fmt.Errorf("error checking post existence: %w", err)
	}
	return exists, nil
}

// Delete removes a post. Likes and comments go with it via ON DELETE CASCADE.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM posts WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrPostNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error deleting post")
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
