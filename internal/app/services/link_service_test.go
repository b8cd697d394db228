package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakeLinkStore struct {
	pairExists bool
	created    *models.Link
	deletedID  int64
	deleteErr  error
}

func (f *fakeLinkStore) GetForStudent(ctx context.Context, studentNumber string) ([]models.Link, error) {
	return []models.Link{}, nil
}

func (f *fakeLinkStore) PairExists(ctx context.Context, a, b string) (bool, error) {
	return f.pairExists, nil
}

func (f *fakeLinkStore) Create(ctx context.Context, connector, acceptor string) (*models.Link, error) {
	f.created = &models.Link{ID: 1, Connector: connector, Acceptor: acceptor}
	return f.created, nil
}

func (f *fakeLinkStore) DeleteOwned(ctx context.Context, id int64, studentNumber string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

type fakeStudentExists struct {
	known map[string]bool
}

func (f *fakeStudentExists) Exists(ctx context.Context, studentNumber string) (bool, error) {
	return f.known[studentNumber], nil
}

func TestCreateLinkRejectsMalformedAcceptor(t *testing.T) {
	svc := NewLinkService(&fakeLinkStore{}, &fakeStudentExists{})

	_, err := svc.CreateLink(context.Background(), "111111111", "abc")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestCreateLinkRejectsSelfLink(t *testing.T) {
	svc := NewLinkService(&fakeLinkStore{}, &fakeStudentExists{})

	_, err := svc.CreateLink(context.Background(), "111111111", "111111111")
	assert.ErrorIs(t, err, apperrors.ErrSelfLink)
}

func TestCreateLinkRejectsUnknownAcceptor(t *testing.T) {
	svc := NewLinkService(&fakeLinkStore{}, &fakeStudentExists{known: map[string]bool{}})

	_, err := svc.CreateLink(context.Background(), "111111111", "222222222")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestCreateLinkRejectsDuplicatePair(t *testing.T) {
	links := &fakeLinkStore{pairExists: true}
	students := &fakeStudentExists{known: map[string]bool{"222222222": true}}
	svc := NewLinkService(links, students)

	_, err := svc.CreateLink(context.Background(), "111111111", "222222222")
	assert.ErrorIs(t, err, apperrors.ErrLinkExists)
	assert.Nil(t, links.created)
}

func TestCreateLinkSucceeds(t *testing.T) {
	links := &fakeLinkStore{}
	students := &fakeStudentExists{known: map[string]bool{"222222222": true}}
	svc := NewLinkService(links, students)

	link, err := svc.CreateLink(context.Background(), "111111111", " 222222222 ")
	assert.NoError(t, err)
	assert.Equal(t, "111111111", link.Connector)
	assert.Equal(t, "222222222", link.Acceptor)
}

func TestDeleteLinkPropagatesNotFound(t *testing.T) {
	links := &fakeLinkStore{deleteErr: apperrors.ErrLinkNotFound}
	svc := NewLinkService(links, &fakeStudentExists{})

	err := svc.DeleteLink(context.Background(), 7, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrLinkNotFound)
}
