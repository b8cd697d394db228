package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsj/linkup/internal/app/controllers"
	"github.com/jsj/linkup/internal/app/models/dto"
	"github.com/jsj/linkup/internal/middleware"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Group        *controllers.GroupController
	Link         *controllers.LinkController
	Event        *controllers.EventController
	Class        *controllers.ClassController
	Post         *controllers.PostController
	Badge        *controllers.BadgeController
	Notification *controllers.NotificationController
	Rating       *controllers.RatingController
	Catalog      *controllers.CatalogController
	Dashboard    *controllers.DashboardController
	Health       *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", c.Health.Health)

	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/register", c.Auth.Register)
	api.POST("/login", c.Auth.Login)
	api.POST("/admin/login", c.Auth.AdminLogin)

	// Catalog lists stay public so registration can offer campus,
	// faculty, course and module choices before a session exists.
	api.GET("/campuses", c.Catalog.GetCampuses)
	api.GET("/faculties", c.Catalog.GetFaculties)
	api.GET("/faculties/:id/courses", c.Catalog.GetFacultyCourses)
	api.GET("/courses", c.Catalog.GetCourses)
	api.GET("/modules", c.Catalog.GetModules)

	// --- Student session routes ---
	student := api.Group("")
	student.Use(authMiddleware.RequireStudent())
	{
		student.POST("/logout", c.Auth.Logout)

		student.GET("/profile", c.Student.GetProfile)
		student.PUT("/profile", c.Student.UpdateProfile)
		student.GET("/students", c.Student.GetStudents)
		student.GET("/students/search", c.Student.SearchStudents)
		student.GET("/students/:studentNumber", c.Student.GetStudent)
		student.PUT("/students/:studentNumber", c.Student.UpdateStudent)

		student.GET("/groups", c.Group.GetGroups)
		student.POST("/groups", c.Group.CreateGroup)
		student.PUT("/groups/:id", c.Group.UpdateGroup)
		student.DELETE("/groups/:id", c.Group.DeleteGroup)

		student.GET("/links", c.Link.GetLinks)
		student.POST("/links", c.Link.CreateLink)
		student.DELETE("/links/:id", c.Link.DeleteLink)

		student.GET("/events", c.Event.GetEvents)
		student.POST("/events", c.Event.CreateEvent)
		student.PUT("/events/:id", c.Event.UpdateEvent)
		student.DELETE("/events/:id", c.Event.DeleteEvent)

		student.GET("/classes", c.Class.GetClasses)
		student.GET("/classes/mine", c.Class.GetMyClasses)
		student.POST("/classes/:id/enroll", c.Class.Enroll)
		student.DELETE("/classes/:id/enroll", c.Class.Unenroll)

		student.GET("/posts", c.Post.GetPosts)
		student.POST("/posts", c.Post.CreatePost)
		student.DELETE("/posts/:id", c.Post.DeletePost)
		student.POST("/posts/:id/like", c.Post.LikePost)
		student.DELETE("/posts/:id/like", c.Post.UnlikePost)
		student.GET("/posts/:id/comments", c.Post.GetComments)
		student.POST("/posts/:id/comments", c.Post.CreateComment)
		student.PUT("/comments/:commentId", c.Post.UpdateComment)
		student.DELETE("/comments/:commentId", c.Post.DeleteComment)

		student.GET("/badges", c.Badge.GetMyBadges)
		student.GET("/notifications", c.Notification.GetMyNotifications)

		student.GET("/ratings", c.Rating.GetRatings)
		student.POST("/ratings", c.Rating.CreateRating)
		student.GET("/ratings/average", c.Rating.GetAverageRating)

		student.GET("/dashboard", c.Dashboard.StudentDashboard)
	}

	// --- Admin session routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/logout", c.Auth.Logout)

		admin.GET("/students", c.Student.GetStudents)
		admin.DELETE("/students/:studentNumber", c.Student.DeleteStudent)

		admin.POST("/classes", c.Class.CreateClass)
		admin.PUT("/classes/:id", c.Class.UpdateClass)
		admin.DELETE("/classes/:id", c.Class.DeleteClass)

		admin.GET("/badges/:studentNumber", c.Badge.GetStudentBadges)
		admin.POST("/badges", c.Badge.AwardBadge)

		admin.GET("/notifications", c.Notification.GetAdminNotifications)
		admin.POST("/notifications", c.Notification.CreateNotification)

		admin.POST("/ratings", c.Rating.CreateAdminRating)

		admin.POST("/campuses", c.Catalog.CreateCampus)
		admin.PUT("/campuses/:id", c.Catalog.UpdateCampus)
		admin.DELETE("/campuses/:id", c.Catalog.DeleteCampus)
		admin.POST("/faculties", c.Catalog.CreateFaculty)
		admin.DELETE("/faculties/:id", c.Catalog.DeleteFaculty)
		admin.POST("/courses", c.Catalog.CreateCourse)
		admin.DELETE("/courses/:id", c.Catalog.DeleteCourse)
		admin.POST("/modules", c.Catalog.CreateModule)
		admin.DELETE("/modules/:id", c.Catalog.DeleteModule)

		admin.GET("/dashboard", c.Dashboard.AdminDashboard)
	}

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("route not found"))
	})
}
