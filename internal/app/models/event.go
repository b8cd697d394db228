package models

import "time"

// Event represents a student-created campus event.
type Event struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Location      string    `json:"location" db:"location"`
	EventDatetime time.Time `json:"event_datetime" db:"event_datetime"`
	CreatedBy     string    `json:"created_by" db:"created_by"`

	CreatorName    *string `json:"creator_name,omitempty"`
	CreatorSurname *string `json:"creator_surname,omitempty"`
}
