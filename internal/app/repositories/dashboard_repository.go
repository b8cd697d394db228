package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// DashboardRepository aggregates counts for the admin and student
// dashboards. Everything is computed from live rows; nothing is cached.
type DashboardRepository struct {
	db *pgxpool.Pool
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// AdminStats returns platform-wide entity counts in a single round trip.
func (r *DashboardRepository) AdminStats(ctx context.Context) (*dto.AdminDashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM students),
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(*) FROM faculties),
			(SELECT COUNT(*) FROM campuses),
			(SELECT COUNT(*) FROM groups),
			(SELECT COUNT(*) FROM events),
			(SELECT COUNT(*) FROM links),
			(SELECT COUNT(*) FROM posts)`

	stats := &dto.AdminDashboardStats{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Students, &stats.Courses, &stats.Faculties, &stats.Campuses,
		&stats.Groups, &stats.Events, &stats.Links, &stats.Posts,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing admin dashboard stats")
		return nil, fmt.Errorf("error computing admin dashboard stats: %w", err)
	}
	return stats, nil
}

// StudentStats returns counts scoped to one student.
func (r *DashboardRepository) StudentStats(ctx context.Context, studentNumber string) (*dto.StudentDashboardStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM links WHERE connector = $1 OR acceptor = $1),
			(SELECT COUNT(*) FROM groups WHERE created_by = $1),
			(SELECT COUNT(*) FROM events WHERE created_by = $1),
			(SELECT COUNT(*) FROM enrollments WHERE student_number = $1),
			(SELECT COUNT(*) FROM badges WHERE student_number = $1),
			(SELECT COUNT(*) FROM posts WHERE created_by = $1)`

	stats := &dto.StudentDashboardStats{}
	err := r.db.QueryRow(ctx, query, studentNumber).Scan(
		&stats.Links, &stats.Groups, &stats.Events,
		&stats.Classes, &stats.Badges, &stats.Posts,
	)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error computing student dashboard stats")
		return nil, fmt.Errorf("error computing student dashboard stats: %w", err)
	}
	return stats, nil
}

// RecentPostsByStudent returns a student's latest posts with like and
// comment counts, newest first.
func (r *DashboardRepository) RecentPostsByStudent(ctx context.Context, studentNumber string, limit int) ([]models.Post, error) {
	const query = `
		SELECT p.id, p.title, p.caption, p.created_by, p.created_at,
		       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
		       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, studentNumber, limit)
	if err != nil {
		logger.Error().Err(err).Str("studentNumber", studentNumber).Msg("Error querying recent posts")
		return nil, fmt.Errorf("error querying recent posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Caption, &post.CreatedBy, &post.CreatedAt,
			&post.LikeCount, &post.CommentCount)
		if err != nil {
			return nil, fmt.Errorf("error scanning recent post row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
