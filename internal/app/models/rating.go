package models

import "time"

// Rating is platform feedback from exactly one of {student, admin};
// value is between 0 and 5 inclusive.
type Rating struct {
	ID                int64      `json:"id" db:"id"`
	RatorType         TargetType `json:"rator_type" db:"rator_type"`
	RatorStudent      *string    `json:"rator_student,omitempty" db:"rator_student"`
	RatorAdmin        *int64     `json:"rator_admin,omitempty" db:"rator_admin"`
	RatingDate        time.Time  `json:"rating_date" db:"rating_date"`
	RatingValue       int        `json:"rating_value" db:"rating_value"`
	RatingDescription *string    `json:"rating_description,omitempty" db:"rating_description"`

	StudentName    *string `json:"student_name,omitempty"`
	StudentSurname *string `json:"student_surname,omitempty"`
	AdminName      *string `json:"admin_name,omitempty"`
	AdminSurname   *string `json:"admin_surname,omitempty"`
}
