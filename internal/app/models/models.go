package models

// TargetType identifies which principal a notification or rating refers to.
type TargetType string

const (
	TargetStudent TargetType = "student"
	TargetAdmin   TargetType = "admin"
)
