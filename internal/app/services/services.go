package services

import (
	"github.com/jsj/linkup/internal/app/repositories"
	"github.com/jsj/linkup/internal/pkg/session"
)

// Services bundles every service for dependency injection.
type Services struct {
	Auth         AuthService
	Student      StudentService
	Group        GroupService
	Link         LinkService
	Event        EventService
	Class        ClassService
	Post         PostService
	Badge        BadgeService
	Notification NotificationService
	Rating       RatingService
	Catalog      CatalogService
	Dashboard    DashboardService
}

// NewServices wires all services to their repositories and the shared
// session store.
func NewServices(repos *repositories.Repositories, sessions *session.Store) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Student, repos.Admin, sessions),
		Student:      NewStudentService(repos.Student),
		Group:        NewGroupService(repos.Group),
		Link:         NewLinkService(repos.Link, repos.Student),
		Event:        NewEventService(repos.Event),
		Class:        NewClassService(repos.Class),
		Post:         NewPostService(repos.Post, repos.Like, repos.Comment),
		Badge:        NewBadgeService(repos.Badge),
		Notification: NewNotificationService(repos.Notification),
		Rating:       NewRatingService(repos.Rating),
		Catalog:      NewCatalogService(repos.Catalog),
		Dashboard:    NewDashboardService(repos.Dashboard, repos.Event),
	}
}
