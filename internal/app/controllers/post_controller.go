package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// PostController handles the post feed, likes and comments.
type PostController struct {
	postService services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService) *PostController {
	return &PostController{postService: postService}
}

// GetPosts returns the feed, newest first, with like and comment counts.
func (c *PostController) GetPosts(ctx *gin.Context) {
	posts, err := c.postService.GetFeed(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost publishes a post authored by the session student.
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post data: "+err.Error()))
		return
	}

	post, err := c.postService.CreatePost(ctx, middleware.StudentNumber(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// DeletePost removes a post the session student authored.
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post id"))
		return
	}

	if err := c.postService.DeletePost(ctx, id, middleware.StudentNumber(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Post deleted successfully"})
}

// LikePost records the session student's like on a post.
func (c *PostController) LikePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post id"))
		return
	}

	like, err := c.postService.LikePost(ctx, id, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Post liked successfully",
		"like":    like,
	})
}

// UnlikePost removes the session student's like from a post.
func (c *PostController) UnlikePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post id"))
		return
	}

	if err := c.postService.UnlikePost(ctx, id, middleware.StudentNumber(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Post unliked successfully"})
}

// GetComments lists a post's comments, oldest first.
func (c *PostController) GetComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post id"))
		return
	}

	comments, err := c.postService.GetComments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment adds a comment to a post.
func (c *PostController) CreateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid post id"))
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("content is required"))
		return
	}

	comment, err := c.postService.CreateComment(ctx, id, middleware.StudentNumber(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// UpdateComment edits a comment the session student wrote.
func (c *PostController) UpdateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "commentId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid comment id"))
		return
	}

	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("content is required"))
		return
	}

	comment, err := c.postService.UpdateComment(ctx, id, middleware.StudentNumber(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// DeleteComment removes a comment the session student wrote.
func (c *PostController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "commentId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid comment id"))
		return
	}

	if err := c.postService.DeleteComment(ctx, id, middleware.StudentNumber(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
