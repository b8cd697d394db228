package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// CatalogController handles the academic catalog endpoints. List reads
// are public so registration can offer choices; writes sit behind the
// admin guard.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetCampuses lists all campuses.
func (c *CatalogController) GetCampuses(ctx *gin.Context) {
	campuses, err := c.catalogService.GetCampuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"campuses": campuses})
}

// CreateCampus adds a campus. Admin route.
func (c *CatalogController) CreateCampus(ctx *gin.Context) {
	var req dto.CreateCampusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid campus data: "+err.Error()))
		return
	}

	campus, err := c.catalogService.CreateCampus(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Campus created successfully",
		"campus":  campus,
	})
}

// UpdateCampus changes a campus. Admin route.
func (c *CatalogController) UpdateCampus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid campus id"))
		return
	}

	var req dto.UpdateCampusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid campus data: "+err.Error()))
		return
	}

	campus, err := c.catalogService.UpdateCampus(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Campus updated successfully",
		"campus":  campus,
	})
}

// DeleteCampus removes a campus. Admin route.
func (c *CatalogController) DeleteCampus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid campus id"))
		return
	}

	if err := c.catalogService.DeleteCampus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Campus deleted successfully"})
}

// GetFaculties lists all faculties.
func (c *CatalogController) GetFaculties(ctx *gin.Context) {
	faculties, err := c.catalogService.GetFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"faculties": faculties})
}

// CreateFaculty adds a faculty. Admin route.
func (c *CatalogController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid faculty data: "+err.Error()))
		return
	}

	faculty, err := c.catalogService.CreateFaculty(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Faculty created successfully",
		"faculty": faculty,
	})
}

// DeleteFaculty removes a faculty. Admin route.
func (c *CatalogController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid faculty id"))
		return
	}

	if err := c.catalogService.DeleteFaculty(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Faculty deleted successfully"})
}

// GetCourses lists all courses with faculty names.
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	courses, err := c.catalogService.GetCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": courses})
}

// GetFacultyCourses lists the courses offered by one faculty.
func (c *CatalogController) GetFacultyCourses(ctx *gin.Context) {
	facultyID, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid faculty id"))
		return
	}

	courses, err := c.catalogService.GetCoursesByFaculty(ctx, facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": courses})
}

// CreateCourse adds a course. Admin route.
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid course data: "+err.Error()))
		return
	}

	course, err := c.catalogService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Course created successfully",
		"course":  course,
	})
}

// DeleteCourse removes a course. Admin route.
func (c *CatalogController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid course id"))
		return
	}

	if err := c.catalogService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}

// GetModules lists all modules.
func (c *CatalogController) GetModules(ctx *gin.Context) {
	modules, err := c.catalogService.GetModules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"modules": modules})
}

// CreateModule adds a module. Admin route.
func (c *CatalogController) CreateModule(ctx *gin.Context) {
	var req dto.CreateModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid module data: "+err.Error()))
		return
	}

	module, err := c.catalogService.CreateModule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Module created successfully",
		"module":  module,
	})
}

// DeleteModule removes a module. Admin route.
func (c *CatalogController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid module id"))
		return
	}

	if err := c.catalogService.DeleteModule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Module deleted successfully"})
}
