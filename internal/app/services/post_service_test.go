package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

type fakePostStore struct {
	exists    bool
	creator   string
	deletedID int64
}

func (f *fakePostStore) GetAll(ctx context.Context) ([]models.Post, error) {
	return []models.Post{}, nil
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	post.ID = 1
	return post, nil
}

func (f *fakePostStore) GetCreator(ctx context.Context, id int64) (string, error) {
	if !f.exists {
		return "", apperrors.ErrPostNotFound
	}
	return f.creator, nil
}

func (f *fakePostStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

func (f *fakePostStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type fakeLikeStore struct {
	liked map[string]bool
}

func (f *fakeLikeStore) Create(ctx context.Context, postID int64, studentNumber string) (*models.Like, error) {
	if f.liked[studentNumber] {
		return nil, apperrors.ErrAlreadyLiked
	}
	if f.liked == nil {
		f.liked = make(map[string]bool)
	}
	f.liked[studentNumber] = true
	return &models.Like{ID: 1, PostID: postID, StudentNumber: studentNumber}, nil
}

func (f *fakeLikeStore) Delete(ctx context.Context, postID int64, studentNumber string) error {
	if !f.liked[studentNumber] {
		return apperrors.ErrLikeNotFound
	}
	delete(f.liked, studentNumber)
	return nil
}

type fakeCommentStore struct {
	author    string
	missing   bool
	updated   string
	deletedID int64
}

func (f *fakeCommentStore) GetForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return []models.Comment{}, nil
}

func (f *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	comment.ID = 1
	return comment, nil
}

func (f *fakeCommentStore) GetAuthor(ctx context.Context, id int64) (string, error) {
	if f.missing {
		return "", apperrors.ErrCommentNotFound
	}
	return f.author, nil
}

func (f *fakeCommentStore) Update(ctx context.Context, id int64, content string) (*models.Comment, error) {
	f.updated = content
	return &models.Comment{ID: id, Content: content}, nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func newPostService(posts *fakePostStore, likes *fakeLikeStore, comments *fakeCommentStore) PostService {
	if posts == nil {
		posts = &fakePostStore{exists: true}
	}
	if likes == nil {
		likes = &fakeLikeStore{liked: map[string]bool{}}
	}
	if comments == nil {
		comments = &fakeCommentStore{}
	}
	return NewPostService(posts, likes, comments)
}

func TestCreatePostRequiresTitle(t *testing.T) {
	svc := newPostService(nil, nil, nil)

	_, err := svc.CreatePost(context.Background(), "111111111", &dto.CreatePostRequest{Title: "  "})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestDeletePostRequiresAuthor(t *testing.T) {
	posts := &fakePostStore{exists: true, creator: "111111111"}
	svc := newPostService(posts, nil, nil)

	err := svc.DeletePost(context.Background(), 1, "222222222")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeletePost(context.Background(), 1, "111111111")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), posts.deletedID)
}

func TestDeleteMissingPostReadsNotFound(t *testing.T) {
	svc := newPostService(&fakePostStore{exists: false}, nil, nil)

	err := svc.DeletePost(context.Background(), 99, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestLikePostIsUniquePerStudent(t *testing.T) {
	svc := newPostService(nil, nil, nil)

	like, err := svc.LikePost(context.Background(), 1, "111111111")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), like.PostID)

	_, err = svc.LikePost(context.Background(), 1, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)
}

func TestLikeMissingPost(t *testing.T) {
	svc := newPostService(&fakePostStore{exists: false}, nil, nil)

	_, err := svc.LikePost(context.Background(), 99, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc := newPostService(nil, nil, nil)

	err := svc.UnlikePost(context.Background(), 1, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrLikeNotFound)
}

func TestCreateCommentRejectsBlankContent(t *testing.T) {
	svc := newPostService(nil, nil, nil)

	_, err := svc.CreateComment(context.Background(), 1, "111111111", &dto.CreateCommentRequest{Content: "  \n"})
	assert.ErrorIs(t, err, apperrors.ErrEmptyComment)
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	svc := newPostService(&fakePostStore{exists: false}, nil, nil)

	_, err := svc.CreateComment(context.Background(), 99, "111111111", &dto.CreateCommentRequest{Content: "nice"})
	assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
}

func TestUpdateCommentRequiresAuthor(t *testing.T) {
	comments := &fakeCommentStore{author: "111111111"}
	svc := newPostService(nil, nil, comments)

	_, err := svc.UpdateComment(context.Background(), 1, "222222222", &dto.UpdateCommentRequest{Content: "edit"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	updated, err := svc.UpdateComment(context.Background(), 1, "111111111", &dto.UpdateCommentRequest{Content: "edit"})
	assert.NoError(t, err)
	assert.Equal(t, "edit", updated.Content)
}

func TestDeleteCommentRequiresAuthor(t *testing.T) {
	comments := &fakeCommentStore{author: "111111111"}
	svc := newPostService(nil, nil, comments)

	err := svc.DeleteComment(context.Background(), 5, "222222222")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.DeleteComment(context.Background(), 5, "111111111")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), comments.deletedID)
}

func TestDeleteMissingCommentReadsNotFound(t *testing.T) {
	svc := newPostService(nil, nil, &fakeCommentStore{missing: true})

	err := svc.DeleteComment(context.Background(), 99, "111111111")
	assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
}
