package dto

import "github.com/jsj/linkup/internal/app/models"

// AdminDashboardStats holds platform-wide entity counts.
type AdminDashboardStats struct {
	Students  int64 `json:"students"`
	Courses   int64 `json:"courses"`
	Faculties int64 `json:"faculties"`
	Campuses  int64 `json:"campuses"`
	Groups    int64 `json:"groups"`
	Events    int64 `json:"events"`
	Links     int64 `json:"links"`
	Posts     int64 `json:"posts"`
}

// StudentDashboardStats holds counts scoped to one student.
type StudentDashboardStats struct {
	Links   int64 `json:"links"`
	Groups  int64 `json:"groups"`
	Events  int64 `json:"events"`
	Classes int64 `json:"classes"`
	Badges  int64 `json:"badges"`
	Posts   int64 `json:"posts"`
}

// StudentDashboard combines per-student stats with recent activity.
// RecentPosts and UpcomingEvents are never nil, only possibly empty.
type StudentDashboard struct {
	Stats          StudentDashboardStats `json:"stats"`
	RecentPosts    []models.Post         `json:"recentPosts"`
	UpcomingEvents []models.Event        `json:"upcomingEvents"`
}
