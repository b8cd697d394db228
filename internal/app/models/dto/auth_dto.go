package dto

import "github.com/jsj/linkup/internal/app/models"

// RegisterRequest carries student self-registration data.
type RegisterRequest struct {
	StudentNumber string  `json:"student_number" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Surname       string  `json:"surname" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	Password      string  `json:"password" binding:"required"`
	CourseID      *int64  `json:"course_id"`
	YearOfStudy   string  `json:"year_of_study" binding:"required"`
	FacultyID     *int64  `json:"faculty_id"`
	CampusID      *int64  `json:"campus_id"`
	PhoneNumber   *string `json:"phone_number"`
}

// LoginRequest carries credentials for both student and admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful student login.
type LoginResponse struct {
	Message   string          `json:"message"`
	SessionID string          `json:"sessionId"`
	Student   *models.Student `json:"student"`
}

// AdminLoginResponse is returned after a successful admin login.
type AdminLoginResponse struct {
	Message   string        `json:"message"`
	SessionID string        `json:"sessionId"`
	Admin     *models.Admin `json:"admin"`
}
