package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// RatingController handles platform rating endpoints.
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// GetRatings lists every rating with rater names.
func (c *RatingController) GetRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.GetAllRatings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// CreateRating records a rating from the session student.
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid rating data: "+err.Error()))
		return
	}

	rating, err := c.ratingService.RateAsStudent(ctx, middleware.StudentNumber(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}

// CreateAdminRating records a rating from the session admin.
func (c *RatingController) CreateAdminRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid rating data: "+err.Error()))
		return
	}

	rating, err := c.ratingService.RateAsAdmin(ctx, middleware.AdminID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}

// GetAverageRating returns the mean rating and count.
func (c *RatingController) GetAverageRating(ctx *gin.Context) {
	average, count, err := c.ratingService.AverageRating(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"average": average,
		"count":   count,
	})
}
