package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all events with creator display names, latest first.
func (r *EventRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	const query = `
		SELECT e.id, e.name, e.description, e.location, e.event_datetime,
		       e.created_by, s.name, s.surname
		FROM events e
		LEFT JOIN students s ON e.created_by = s.student_number
		ORDER BY e.event_datetime DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID, &event.Name, &event.Description, &event.Location,
			&event.EventDatetime, &event.CreatedBy,
			&event.CreatorName, &event.CreatorSurname,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create inserts a new event owned by the given student.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("name", "description", "location", "event_datetime", "created_by").
		Values(event.Name, event.Description, event.Location, event.EventDatetime, event.CreatedBy).
		Suffix("RETURNING id, name, description, location, event_datetime, created_by").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create event query: %w", err)
	}

	created := &models.Event{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&created.ID, &created.Name, &created.Description, &created.Location,
		&created.EventDatetime, &created.CreatedBy,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating event")
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// GetCreator returns the creator of an event, or ErrEventNotFound.
func (r *EventRepository) GetCreator(ctx context.Context, id int64) (string, error) {
	var createdBy string
	err := r.db.QueryRow(ctx, "SELECT created_by FROM events WHERE id = $1", id).Scan(&createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error fetching event creator")
		return "", fmt.Errorf("error fetching event creator: %w", err)
	}
	return createdBy, nil
}

// Update changes an event's mutable fields.
func (r *EventRepository) Update(ctx context.Context, id int64, event *models.Event) (*models.Event, error) {
	sql, args, err := r.sb.Update("events").
		Set("name", event.Name).
		Set("description", event.Description).
		Set("location", event.Location).
		Set("event_datetime", event.EventDatetime).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, description, location, event_datetime, created_by").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update event query: %w", err)
	}

	updated := &models.Event{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.Location,
		&updated.EventDatetime, &updated.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error updating event")
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return updated, nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	var deleted int64
	err := r.db.QueryRow(ctx, "DELETE FROM events WHERE id = $1 RETURNING id", id).Scan(&deleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error deleting event")
		return fmt.Errorf("error deleting event: %w", err)
	}
	return nil
}

// Upcoming returns events at or after the given instant, soonest first.
func (r *EventRepository) Upcoming(ctx context.Context, from time.Time, limit int) ([]models.Event, error) {
	const query = `
		SELECT id, name, description, location, event_datetime, created_by
		FROM events
		WHERE event_datetime >= $1
		ORDER BY event_datetime ASC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, from, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying upcoming events")
		return nil, fmt.Errorf("error querying upcoming events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID, &event.Name, &event.Description, &event.Location,
			&event.EventDatetime, &event.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning upcoming event row: %w", err)
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
