package models

import "time"

// Group represents a student-created group. GroupSize is bounded by MaxSize
// at the storage layer.
type Group struct {
	ID               int64     `json:"id" db:"id"`
	GroupName        string    `json:"group_name" db:"group_name"`
	GroupDescription *string   `json:"group_description,omitempty" db:"group_description"`
	GroupSize        int       `json:"group_size" db:"group_size"`
	MaxSize          int       `json:"max_size" db:"max_size"`
	CreatedBy        string    `json:"created_by" db:"created_by"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	CreatorName    *string `json:"creator_name,omitempty"`
	CreatorSurname *string `json:"creator_surname,omitempty"`
}
