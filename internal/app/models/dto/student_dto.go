package dto

// UpdateStudentRequest carries the self-service profile fields a student
// may change. The student number itself is immutable.
type UpdateStudentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Surname     string  `json:"surname" binding:"required"`
	Email       string  `json:"email" binding:"required"`
	PhoneNumber *string `json:"phone_number"`
	YearOfStudy string  `json:"year_of_study" binding:"required"`
}
