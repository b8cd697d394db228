package models

import "time"

// Class represents a scheduled class for a module.
type Class struct {
	ID              int64     `json:"id" db:"id"`
	ClassName       string    `json:"class_name" db:"class_name"`
	ModuleID        *int64    `json:"module_id,omitempty" db:"module_id"`
	ClassTime       string    `json:"class_time" db:"class_time"`
	ClassDate       time.Time `json:"class_date" db:"class_date"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	Location        string    `json:"location" db:"location"`
	Instructor      string    `json:"instructor" db:"instructor"`

	ModuleName *string `json:"module_name,omitempty"`
}

// Enrollment is the many-to-many row between students and classes,
// unique per (student, class) pair.
type Enrollment struct {
	StudentNumber string `json:"student_number" db:"student_number"`
	ClassID       int64  `json:"class_id" db:"class_id"`
}
