package models

import "time"

// Badge is awarded to a student by an admin. Badges are append-only.
type Badge struct {
	ID            int64     `json:"id" db:"id"`
	BadgeName     string    `json:"badge_name" db:"badge_name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	StudentNumber string    `json:"student_number" db:"student_number"`
	AwardedAt     time.Time `json:"awarded_at" db:"awarded_at"`
}
