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

// LinkRepository handles link database operations
type LinkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLinkRepository creates a new LinkRepository
func NewLinkRepository(db *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetForStudent retrieves all links a student participates in, either side,
// newest first, with both participants' display names.
func (r *LinkRepository) GetForStudent(ctx context.Context, studentNumber string) ([]models.Link, error) {
	const query = `
		SELECT l.id, l.connector, l.acceptor, l.created_at,
		       c.name, c.surname, a.name, a.surname
		FROM links l
		LEFT JOIN students c ON l.connector = c.student_number
		LEFT JOIN students a ON l.acceptor = a.student_number
		WHERE l.connector = $1 OR l.acceptor = $1
		ORDER BY l.created_at DESC`

	rows, err := r.db.Query(ctx, query, studentNumber)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying links")
		return nil, fmt.Errorf("error querying links: %w", err)
	}
	defer rows.Close()

	links := []models.Link{}
	for rows.Next() {
		var link models.Link
		err := rows.Scan(
			&link.ID, &link.Connector, &link.Acceptor, &link.CreatedAt,
			&link.ConnectorName, &link.ConnectorSurname,
			&link.AcceptorName, &link.AcceptorSurname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning link row: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// PairExists checks for an existing link in either direction.
func (r *LinkRepository) PairExists(ctx context.Context, a, b string) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM links
			WHERE (connector = $1 AND acceptor = $2) OR (connector = $2 AND acceptor = $1)
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, a, b).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking link existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new link. The symmetric unique index makes the database
// the authority on duplicate pairs; a violation surfaces as ErrLinkExists.
func (r *LinkRepository) Create(ctx context.Context, connector, acceptor string) (*models.Link, error) {
	sql, args, err := r.sb.Insert("links").
		Columns("connector", "acceptor").
		Values(connector, acceptor).
		Suffix("RETURNING id, connector, acceptor, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create link query: %w", err)
	}

	link := &models.Link{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&link.ID, &link.Connector, &link.Acceptor, &link.CreatedAt,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrLinkExists
		}
		logger.Error().Err(err).Msg("Error creating link")
		return nil, fmt.Errorf("error creating link: %w", err)
	}
	return link, nil
}

// DeleteOwned removes a link only if the student is one of its two
// participants. A miss (wrong ID or not a participant) is ErrLinkNotFound.
func (r *LinkRepository) DeleteOwned(ctx context.Context, id int64, studentNumber string) error {
	const query = `
		DELETE FROM links
		WHERE id = $1 AND (connector = $2 OR acceptor = $2)
		RETURNING id`

	var deleted int64
	err := r.db.QueryRow(ctx, query, id, studentNumber).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrLinkNotFound
		}
		logger.Error().Err(err).Int64("linkID", id).Msg("Error deleting link")
		return fmt.Errorf("error deleting link: %w", err)
	}
	return nil
}
