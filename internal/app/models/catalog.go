package models

// Campus represents a physical campus location.
type Campus struct {
	ID         int64    `json:"id" db:"id"`
	CampusName string   `json:"campus_name" db:"campus_name"`
	Location   string   `json:"location" db:"location"`
	CampusSize *float64 `json:"campus_size,omitempty" db:"campus_size"`
}

// Faculty represents an academic faculty.
type Faculty struct {
	ID            int64   `json:"id" db:"id"`
	FacultyName   string  `json:"faculty_name" db:"faculty_name"`
	OfficeAddress *string `json:"office_address,omitempty" db:"office_address"`
	Description   *string `json:"description,omitempty" db:"description"`
}

// Course represents a degree course offered by a faculty.
type Course struct {
	ID              int64  `json:"id" db:"id"`
	FacultyID       *int64 `json:"faculty_id,omitempty" db:"faculty_id"`
	CourseName      string `json:"course_name" db:"course_name"`
	Credits         int    `json:"credits" db:"credits"`
	NumberOfModules int    `json:"number_of_modules" db:"number_of_modules"`
	CourseCode      string `json:"course_code" db:"course_code"`

	FacultyName *string `json:"faculty_name,omitempty"`
}

// Module represents a course module.
type Module struct {
	ID         int64    `json:"id" db:"id"`
	ModuleName string   `json:"module_name" db:"module_name"`
	ModuleCode string   `json:"module_code" db:"module_code"`
	Credits    int      `json:"credits" db:"credits"`
	ModuleCost *float64 `json:"module_cost,omitempty" db:"module_cost"`
}
