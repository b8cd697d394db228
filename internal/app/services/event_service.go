package services

import (
	"context"
	"time"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type eventStore interface {
	GetAll(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	GetCreator(ctx context.Context, id int64) (string, error)
	Update(ctx context.Context, id int64, event *models.Event) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService handles campus event operations. Updates and deletes are
// restricted to the event's creator.
type EventService interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, creator string, req *dto.CreateEventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, actor string, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64, actor string) error
}

type eventServiceImpl struct {
	events eventStore
}

// NewEventService creates a new event service instance
func NewEventService(events eventStore) EventService {
	return &eventServiceImpl{events: events}
}

// GetAllEvents returns every event, latest first.
func (s *eventServiceImpl) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.GetAll(ctx)
}

// CreateEvent creates an event owned by the session student.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, creator string, req *dto.CreateEventRequest) (*models.Event, error) {
	when, err := parseEventDatetime(req.EventDatetime)
	if err != nil {
		return nil, err
	}
	if validation.IsBlank(req.Name) || validation.IsBlank(req.Location) {
		return nil, apperrors.NewInvalidRequestError("name and location are required")
	}

	event, err := s.events.Create(ctx, &models.Event{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		EventDatetime: when,
		CreatedBy:     creator,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("eventID", event.ID).Str("createdBy", creator).Msg("Event created")
	return event, nil
}

// UpdateEvent applies changes after verifying the actor created the event.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, actor string, req *dto.UpdateEventRequest) (*models.Event, error) {
	when, err := parseEventDatetime(req.EventDatetime)
	if err != nil {
		return nil, err
	}
	if validation.IsBlank(req.Name) || validation.IsBlank(req.Location) {
		return nil, apperrors.NewInvalidRequestError("name and location are required")
	}

	if err := s.requireCreator(ctx, id, actor); err != nil {
		return nil, err
	}

	return s.events.Update(ctx, id, &models.Event{
		Name:          req.Name,
		Description:   req.Description,
		Location:      req.Location,
		EventDatetime: when,
	})
}

// DeleteEvent removes an event after verifying ownership.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64, actor string) error {
	if err := s.requireCreator(ctx, id, actor); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("eventID", id).Str("deletedBy", actor).Msg("Event deleted")
	return nil
}

func (s *eventServiceImpl) requireCreator(ctx context.Context, id int64, actor string) error {
	creator, err := s.events.GetCreator(ctx, id)
	if err != nil {
		return err
	}
	if creator != actor {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// parseEventDatetime accepts RFC 3339 and the date-time form without a
// zone, which is interpreted as UTC.
func parseEventDatetime(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewInvalidRequestError("invalid event datetime")
}
