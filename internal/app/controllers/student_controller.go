package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
	"github.com/jsj/linkup/internal/pkg/apperrors"
)

// StudentController handles the student directory and profiles.
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudents lists every registered student.
func (c *StudentController) GetStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"students": students})
}

// GetProfile returns the session student's own profile.
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"student": student})
}

// GetStudent returns one student by number.
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx, ctx.Param("studentNumber"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"student": student})
}

// UpdateProfile applies profile changes for the session student only.
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid profile data: "+err.Error()))
		return
	}

	student, err := c.studentService.UpdateProfile(ctx, middleware.StudentNumber(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"student": student,
	})
}

// UpdateStudent applies profile changes addressed by student number.
// Updating anyone but yourself is forbidden.
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	target := ctx.Param("studentNumber")
	if target != middleware.StudentNumber(ctx) {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid profile data: "+err.Error()))
		return
	}

	student, err := c.studentService.UpdateProfile(ctx, target, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"student": student,
	})
}

// DeleteStudent removes a student account. Admin route.
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("studentNumber")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}

// SearchStudents runs a directory search over the q query parameter.
func (c *StudentController) SearchStudents(ctx *gin.Context) {
	students, err := c.studentService.SearchStudents(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"students": students})
}
