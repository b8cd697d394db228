package models

// Student defines the student model based on the 'students' table.
// PasswordHash never leaves the server.
type Student struct {
	StudentNumber string  `json:"student_number" db:"student_number"`
	Name          string  `json:"name" db:"name"`
	Surname       string  `json:"surname" db:"surname"`
	Email         string  `json:"email" db:"email"`
	PasswordHash  string  `json:"-" db:"password"`
	CourseID      *int64  `json:"course_id,omitempty" db:"course_id"`
	YearOfStudy   string  `json:"year_of_study" db:"year_of_study"`
	FacultyID     *int64  `json:"faculty_id,omitempty" db:"faculty_id"`
	CampusID      *int64  `json:"campus_id,omitempty" db:"campus_id"`
	PhoneNumber   *string `json:"phone_number,omitempty" db:"phone_number"`

	// Joined display fields (populated by list/detail queries)
	CourseName  *string `json:"course_name,omitempty"`
	FacultyName *string `json:"faculty_name,omitempty"`
	CampusName  *string `json:"campus_name,omitempty"`
}
