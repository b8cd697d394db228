package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// BadgeController handles badge endpoints.
type BadgeController struct {
	badgeService services.BadgeService
}

// NewBadgeController creates a new BadgeController
func NewBadgeController(badgeService services.BadgeService) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// GetMyBadges lists the session student's badges.
func (c *BadgeController) GetMyBadges(ctx *gin.Context) {
	badges, err := c.badgeService.GetBadges(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"badges": badges})
}

// GetStudentBadges lists any student's badges. Admin route.
func (c *BadgeController) GetStudentBadges(ctx *gin.Context) {
	badges, err := c.badgeService.GetBadges(ctx, ctx.Param("studentNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"badges": badges})
}

// AwardBadge grants a badge to a student. Admin route.
func (c *BadgeController) AwardBadge(ctx *gin.Context) {
	var req dto.AwardBadgeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid badge data: "+err.Error()))
		return
	}

	badge, err := c.badgeService.AwardBadge(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Badge awarded successfully",
		"badge":   badge,
	})
}
