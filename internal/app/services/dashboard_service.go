package services

import (
	"context"
	"time"

	"github.com/jsj/linkup/internal/app/models"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/app/repositories"
)

const (
	recentPostLimit    = 5
	upcomingEventLimit = 5
)

// DashboardService aggregates the admin and student dashboards from
// live rows on every request.
type DashboardService interface {
	AdminDashboard(ctx context.Context) (*dto.AdminDashboardStats, error)
	StudentDashboard(ctx context.Context, studentNumber string) (*dto.StudentDashboard, error)
}

type dashboardServiceImpl struct {
	dashboards *repositories.DashboardRepository
	events     *repositories.EventRepository
	now        func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dashboards *repositories.DashboardRepository, events *repositories.EventRepository) DashboardService {
	return &dashboardServiceImpl{
		dashboards: dashboards,
		events:     events,
		now:        time.Now,
	}
}

// AdminDashboard returns platform-wide entity counts.
func (s *dashboardServiceImpl) AdminDashboard(ctx context.Context) (*dto.AdminDashboardStats, error) {
	return s.dashboards.AdminStats(ctx)
}

// StudentDashboard combines per-student counts with the student's
// latest posts and the next few upcoming events.
func (s *dashboardServiceImpl) StudentDashboard(ctx context.Context, studentNumber string) (*dto.StudentDashboard, error) {
	stats, err := s.dashboards.StudentStats(ctx, studentNumber)
	if err != nil {
		return nil, err
	}

	posts, err := s.dashboards.RecentPostsByStudent(ctx, studentNumber, recentPostLimit)
	if err != nil {
		return nil, err
	}

	events, err := s.events.Upcoming(ctx, s.now(), upcomingEventLimit)
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []models.Post{}
	}
	if events == nil {
		events = []models.Event{}
	}

	return &dto.StudentDashboard{
		Stats:          *stats,
		RecentPosts:    posts,
		UpcomingEvents: events,
	}, nil
}
