package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// ClassController handles schedule and enrollment endpoints.
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// GetClasses lists the full class schedule.
func (c *ClassController) GetClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"classes": classes})
}

// CreateClass schedules a new class. Admin route.
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class data: "+err.Error()))
		return
	}

	class, err := c.classService.CreateClass(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Class created successfully",
		"class":   class,
	})
}

// UpdateClass changes a scheduled class. Admin route.
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class id"))
		return
	}

	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class data: "+err.Error()))
		return
	}

	class, err := c.classService.UpdateClass(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Class updated successfully",
		"class":   class,
	})
}

// DeleteClass removes a class and its enrollments. Admin route.
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class id"))
		return
	}

	if err := c.classService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Class deleted successfully"})
}

// Enroll registers the session student in a class.
func (c *ClassController) Enroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class id"))
		return
	}

	if err := c.classService.Enroll(ctx, middleware.StudentNumber(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Enrolled successfully"})
}

// Unenroll drops the session student's enrollment in a class.
func (c *ClassController) Unenroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid class id"))
		return
	}

	if err := c.classService.Unenroll(ctx, middleware.StudentNumber(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Unenrolled successfully"})
}

// GetMyClasses lists the classes the session student is enrolled in.
func (c *ClassController) GetMyClasses(ctx *gin.Context) {
	classes, err := c.classService.GetEnrolledClasses(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"classes": classes})
}
