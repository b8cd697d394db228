package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository for dependency injection.
type Repositories struct {
	Student      *StudentRepository
	Admin        *AdminRepository
	Group        *GroupRepository
	Link         *LinkRepository
	Event        *EventRepository
	Class        *ClassRepository
	Post         *PostRepository
	Like         *LikeRepository
	Comment      *CommentRepository
	Badge        *BadgeRepository
	Notification *NotificationRepository
	Rating       *RatingRepository
	Catalog      *CatalogRepository
	Dashboard    *DashboardRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Student:      NewStudentRepository(db),
		Admin:        NewAdminRepository(db),
		Group:        NewGroupRepository(db),
		Link:         NewLinkRepository(db),
		Event:        NewEventRepository(db),
		Class:        NewClassRepository(db),
		Post:         NewPostRepository(db),
		Like:         NewLikeRepository(db),
		Comment:      NewCommentRepository(db),
		Badge:        NewBadgeRepository(db),
		Notification: NewNotificationRepository(db),
		Rating:       NewRatingRepository(db),
		Catalog:      NewCatalogRepository(db),
		Dashboard:    NewDashboardRepository(db),
	}
}
