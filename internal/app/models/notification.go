package models

import "time"

// Notification targets exactly one of {student, admin}; the storage layer
// enforces the same exclusivity with a check constraint.
type Notification struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Description   *string    `json:"description,omitempty" db:"description"`
	TargetType    TargetType `json:"target_type" db:"target_type"`
	TargetStudent *string    `json:"target_student,omitempty" db:"target_student"`
	TargetAdmin   *int64     `json:"target_admin,omitempty" db:"target_admin"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
