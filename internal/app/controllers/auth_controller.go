package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/services"
	"github.com/jsj/linkup/internal/middleware"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles student self-registration.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid registration data: "+err.Error()))
		return
	}

	student, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Student registered successfully",
		"student": student,
	})
}

// Login authenticates a student and returns a session token.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("email and password are required"))
		return
	}

	token, student, err := c.authService.LoginStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		SessionID: token,
		Student:   student,
	})
}

// AdminLogin authenticates an admin and returns a session token from the
// admin namespace.
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("email and password are required"))
		return
	}

	token, admin, err := c.authService.LoginAdmin(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Message:   "Admin login successful",
		SessionID: token,
		Admin:     admin,
	})
}

// Logout revokes the caller's session token. Succeeds even when the
// token is already gone.
func (c *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString(middleware.ContextSessionToken)
	c.authService.Logout(token)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}
