package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// NotificationController handles notification endpoints.
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetMyNotifications lists notifications addressed to the session student.
func (c *NotificationController) GetMyNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.GetStudentNotifications(ctx, middleware.StudentNumber(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// GetAdminNotifications lists notifications addressed to the session admin.
func (c *NotificationController) GetAdminNotifications(ctx *gin.Context) {
	notifications, err := c.notificationService.GetAdminNotifications(ctx, middleware.AdminID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// CreateNotification creates a targeted notification. Admin route.
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid notification data: "+err.Error()))
		return
	}

	notification, err := c.notificationService.CreateNotification(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}
