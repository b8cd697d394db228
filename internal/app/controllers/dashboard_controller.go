package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// DashboardController handles aggregation endpoints.
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// AdminDashboard returns platform-wide counts. Admin route.
func (c *DashboardController) AdminDashboard(ctx *gin.Context) {
	stats, err := c.dashboardService.AdminDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"stats": stats})
}

// StudentDashboard returns the session student's stats, recent posts
// and upcoming events.
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.StudentDashboard(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}
