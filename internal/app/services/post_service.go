package services

import (
	"context"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/pkg/apperrors"
	"github.com/jsj/linkup/internal/pkg/logger"
	"github.com/jsj/linkup/internal/pkg/validation"
)

type postStore interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetCreator(ctx context.Context, id int64) (string, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type likeStore interface {
	Create(ctx context.Context, postID int64, studentNumber string) (*models.Like, error)
	Delete(ctx context.Context, postID int64, studentNumber string) error
}

type commentStore interface {
	GetForPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	GetAuthor(ctx context.Context, id int64) (string, error)
	Update(ctx context.Context, id int64, content string) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// PostService handles the post feed with its likes and comments.
// Posts and comments can be removed only by their authors; likes are
// unique per student and post.
type PostService interface {
	GetFeed(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, author string, req *dto.CreatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, id int64, actor string) error

	LikePost(ctx context.Context, postID int64, studentNumber string) (*models.Like, error)
	UnlikePost(ctx context.Context, postID int64, studentNumber string) error

	GetComments(ctx context.Context, postID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID int64, author string, req *dto.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, actor string, req *dto.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64, actor string) error
}

type postServiceImpl struct {
	posts    postStore
	likes    likeStore
	comments commentStore
}

// NewPostService creates a new post service instance
func NewPostService(posts postStore, likes likeStore, comments commentStore) PostService {
	return &postServiceImpl{posts: posts, likes: likes, comments: comments}
}

// GetFeed returns all posts newest first with live like and comment counts.
func (s *postServiceImpl) GetFeed(ctx context.Context) ([]models.Post, error) {
	return s.posts.GetAll(ctx)
}

// CreatePost publishes a post authored by the session student.
func (s *postServiceImpl) CreatePost(ctx context.Context, author string, req *dto.CreatePostRequest) (*models.Post, error) {
	if validation.IsBlank(req.Title) {
		return nil, apperrors.NewInvalidRequestError("title is required")
	}

	post, err := s.posts.Create(ctx, &models.Post{
		Title:     req.Title,
		Caption:   req.Caption,
		CreatedBy: author,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("postID", post.ID).Str("createdBy", author).Msg("Post created")
	return post, nil
}

// DeletePost removes a post after verifying the actor authored it.
// Likes and comments are removed with it.
func (s *postServiceImpl) DeletePost(ctx context.Context, id int64, actor string) error {
	creator, err := s.posts.GetCreator(ctx, id)
	if err != nil {
		return err
	}
	if creator != actor {
		return apperrors.ErrPermissionDenied
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("postID", id).Str("deletedBy", actor).Msg("Post deleted")
	return nil
}

// LikePost records a like. A second like from the same student fails
// with ErrAlreadyLiked.
func (s *postServiceImpl) LikePost(ctx context.Context, postID int64, studentNumber string) (*models.Like, error) {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}
	return s.likes.Create(ctx, postID, studentNumber)
}

// UnlikePost removes the student's like from a post.
func (s *postServiceImpl) UnlikePost(ctx context.Context, postID int64, studentNumber string) error {
	return s.likes.Delete(ctx, postID, studentNumber)
}

// GetComments returns a post's comments oldest first.
func (s *postServiceImpl) GetComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}
	return s.comments.GetForPost(ctx, postID)
}

// CreateComment adds a comment to a post.
func (s *postServiceImpl) CreateComment(ctx context.Context, postID int64, author string, req *dto.CreateCommentRequest) (*models.Comment, error) {
	if validation.IsBlank(req.Content) {
		return nil, apperrors.ErrEmptyComment
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrPostNotFound
	}

	return s.comments.Create(ctx, &models.Comment{
		PostID:        postID,
		StudentNumber: author,
		Content:       req.Content,
	})
}

// UpdateComment edits a comment after verifying the actor wrote it.
func (s *postServiceImpl) UpdateComment(ctx context.Context, commentID int64, actor string, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	if validation.IsBlank(req.Content) {
		return nil, apperrors.ErrEmptyComment
	}

	author, err := s.comments.GetAuthor(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if author != actor {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.comments.Update(ctx, commentID, req.Content)
}

// DeleteComment removes a comment after verifying authorship.
func (s *postServiceImpl) DeleteComment(ctx context.Context, commentID int64, actor string) error {
	author, err := s.comments.GetAuthor(ctx, commentID)
	if err != nil {
		return err
	}
	if author != actor {
		return apperrors.ErrPermissionDenied
	}
	return s.comments.Delete(ctx, commentID)
}
