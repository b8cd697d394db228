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

// RatingRepository handles platform rating database operations
type RatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRatingRepository creates a new RatingRepository
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all ratings newest first, with rator display names
// resolved from whichever side submitted the rating.
func (r *RatingRepository) GetAll(ctx context.Context) ([]models.Rating, error) {
	const query = `
		SELECT r.id, r.rator_type, r.rator_student, r.rator_admin,
		       r.rating_date, r.rating_value, r.rating_description,
		       s.name, s.surname, a.name, a.surname
		FROM ratings r
		LEFT JOIN students s ON r.rator_student = s.student_number
		LEFT JOIN admin a ON r.rator_admin = a.admin_id
		ORDER BY r.rating_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying ratings")
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer rows.Close()

	ratings := []models.Rating{}
	for rows.Next() {
		var rating models.Rating
		err := rows.Scan(
			&rating.ID, &rating.RatorType, &rating.RatorStudent, &rating.RatorAdmin,
			&rating.RatingDate, &rating.RatingValue, &rating.RatingDescription,
			&rating.StudentName, &rating.StudentSurname,
			&rating.AdminName, &rating.AdminSurname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

// Create inserts a rating. The exclusivity and value-range check
// constraints guard target and bounds at the storage level.
func (r *RatingRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	sql, args, err := r.sb.Insert("ratings").
		Columns("rator_type", "rator_student", "rator_admin", "rating_value", "rating_description").
		Values(rating.RatorType, rating.RatorStudent, rating.RatorAdmin,
			rating.RatingValue, rating.RatingDescription).
		Suffix("RETURNING id, rator_type, rator_student, rator_admin, rating_date, rating_value, rating_description").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create rating query: %w", err)
	}

	created := &models.Rating{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.RatorType, &created.RatorStudent, &created.RatorAdmin,
		&created.RatingDate, &created.RatingValue, &created.RatingDescription,
	)
	if err != nil {
		if dberrors.IsCheckViolation(err) {
			return nil, apperrors.ErrInvalidRating
		}
		logger.Error().Err(err).Msg("Error creating rating")
		return nil, fmt.Errorf("error creating rating: %w", err)
	}
	return created, nil
}

// Average returns the mean rating value and the rating count.
func (r *RatingRepository) Average(ctx context.Context) (float64, int64, error) {
	var avg *float64
	var count int64
	err := r.db.QueryRow(ctx, "SELECT AVG(rating_value), COUNT(*) FROM ratings").Scan(&avg, &count)
	if err != nil {
		logger.Error().Err(err).Msg("Error computing rating average")
		return 0, 0, fmt.Errorf("error computing rating average: %w", err)
	}
	if avg == nil {
		return 0, count, nil
	}
	return *avg, count, nil
}
