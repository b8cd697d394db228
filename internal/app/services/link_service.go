package services

import (
	"context"
	"strings"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type linkStore interface {
	GetForStudent(ctx context.Context, studentNumber string) ([]models.Link, error)
	PairExists(ctx context.Context, a, b string) (bool, error)
	Create(ctx context.Context, connector, acceptor string) (*models.Link, error)
	DeleteOwned(ctx context.Context, id int64, studentNumber string) error
}

type studentExistsStore interface {
	Exists(ctx context.Context, studentNumber string) (bool, error)
}

// LinkService handles undirected student-to-student connections. A pair
// of students can hold at most one link, regardless of who initiated it.
type LinkService interface {
	GetLinks(ctx context.Context, studentNumber string) ([]models.Link, error)
	CreateLink(ctx context.Context, connector, acceptor string) (*models.Link, error)
	DeleteLink(ctx context.Context, id int64, actor string) error
}

type linkServiceImpl struct {
	links    linkStore
	students studentExistsStore
}

// NewLinkService creates a new link service instance
func NewLinkService(links linkStore, students studentExistsStore) LinkService {
	return &linkServiceImpl{links: links, students: students}
}

// GetLinks returns every link the student participates in, either side.
func (s *linkServiceImpl) GetLinks(ctx context.Context, studentNumber string) ([]models.Link, error) {
	return s.links.GetForStudent(ctx, studentNumber)
}

// CreateLink connects the session student to the acceptor. Self-links are
// rejected, as are pairs that already hold a link in either direction.
func (s *linkServiceImpl) CreateLink(ctx context.Context, connector, acceptor string) (*models.Link, error) {
	acceptor = strings.TrimSpace(acceptor)
	if !validation.IsValidStudentNumber(acceptor) {
		return nil, apperrors.NewInvalidRequestError("acceptor must be a valid student number")
	}
	if acceptor == connector {
		return nil, apperrors.ErrSelfLink
	}

	exists, err := s.students.Exists(ctx, acceptor)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	// Advisory pre-check for a friendlier error; the symmetric unique
	// index is what actually prevents the duplicate under races.
	taken, err := s.links.PairExists(ctx, connector, acceptor)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrLinkExists
	}

	link, err := s.links.Create(ctx, connector, acceptor)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("connector", connector).Str("acceptor", acceptor).Msg("Link created")
	return link, nil
}

// DeleteLink removes a link the actor participates in. Links owned by
// other pairs read as not found.
func (s *linkServiceImpl) DeleteLink(ctx context.Context, id int64, actor string) error {
	if err := s.links.DeleteOwned(ctx, id, actor); err != nil {
		return err
	}
	logger.Info().Int64("linkID", id).Str("deletedBy", actor).Msg("Link deleted")
	return nil
}
