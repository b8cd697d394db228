package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// LinkController handles student connection endpoints.
type LinkController struct {
	linkService services.LinkService
}

// NewLinkController creates a new LinkController
func NewLinkController(linkService services.LinkService) *LinkController {
	return &LinkController{linkService: linkService}
}

// GetLinks lists the session student's links, both directions.
func (c *LinkController) GetLinks(ctx *gin.Context) {
	links, err := c.linkService.GetLinks(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"links": links})
}

// CreateLink connects the session student with another student.
func (c *LinkController) CreateLink(ctx *gin.Context) {
	var req dto.CreateLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("acceptor is required"))
		return
	}

	link, err := c.linkService.CreateLink(ctx, middleware.StudentNumber(ctx), req.Acceptor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Link created successfully",
		"link":    link,
	})
}

// DeleteLink removes a link the session student participates in.
func (c *LinkController) DeleteLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid link id"))
		return
	}

	if err := c.linkService.DeleteLink(ctx, id, middleware.StudentNumber(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Link deleted successfully"})
}
