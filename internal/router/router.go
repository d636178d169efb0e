package router

import (
	"time"

	"github.com/blogloom/backend/internal/handlers"
	"github.com/blogloom/backend/internal/middleware"
	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/blogloom/backend/internal/services"
	"github.com/blogloom/backend/internal/sessions"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const sessionMaxAge = 14 * 24 * time.Hour

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logrus.Info("global middleware configured")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
		&models.Session{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to auto migrate models")
	}
	logrus.Info("auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	profileRepo := repositories.NewPostgresProfileRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	sessionRepo := repositories.NewPostgresSessionRepository(db)

	sessionManager := sessions.NewManager(sessionRepo, sessionMaxAge)
	interactions := services.NewInteractionService(postRepo, likeRepo, commentRepo, notificationRepo, userRepo)

	loadSession := middleware.LoadSession(sessionManager)
	requireSession := middleware.RequireSession(sessionManager)
	requireSessionJSON := middleware.RequireSessionJSON(sessionManager)

	// --- Auth ---
	authHandler := handlers.NewAuthHandler(userRepo, sessionManager)
	authHandler.RegisterAuthRoutes(e)
	logrus.Info("auth routes configured")

	// --- Feed + search: public, projection varies for logged-in viewers ---
	feedHandler := handlers.NewFeedHandler(postRepo, likeRepo, commentRepo)
	e.GET("/", feedHandler.GetFeed, loadSession)

	searchHandler := handlers.NewSearchHandler(userRepo, postRepo)
	e.GET("/search", searchHandler.Search)
	logrus.Info("feed and search routes configured")

	// --- Posts ---
	postHandler := handlers.NewPostHandler(postRepo, commentRepo, likeRepo, categoryRepo)
	e.GET("/post/:id", postHandler.GetPostDetail, loadSession)
	e.GET("/create", postHandler.GetCreateForm, requireSession)
	e.POST("/create", postHandler.CreatePost, requireSession)
	e.GET("/post/:id/edit", postHandler.GetEditForm, requireSession)
	e.POST("/post/:id/edit", postHandler.EditPost, requireSession)
	e.POST("/delete-post/:id", postHandler.DeletePost, requireSession)
	e.GET("/my-posts", postHandler.GetMyPosts, requireSession)
	e.GET("/dashboard", postHandler.GetDashboard, requireSession)
	logrus.Info("post routes configured")

	// --- Comments ---
	commentHandler := handlers.NewCommentHandler(interactions, commentRepo)
	e.POST("/post/:id", commentHandler.AddComment, requireSession)
	e.POST("/comment/delete/:id", commentHandler.DeleteComment, requireSession)
	logrus.Info("comment routes configured")

	// --- Likes ---
	likeHandler := handlers.NewLikeHandler(interactions)
	e.POST("/like-toggle", likeHandler.ToggleLike, requireSessionJSON)
	logrus.Info("like routes configured")

	// --- Notifications ---
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, userRepo)
	e.GET("/notifications", notificationHandler.GetNotifications, requireSession)
	e.GET("/notifications/unread-count", notificationHandler.GetUnreadCount, requireSessionJSON)
	e.GET("/notification/:id", notificationHandler.OpenNotification, requireSession)
	logrus.Info("notification routes configured")

	// --- Profiles ---
	profileHandler := handlers.NewProfileHandler(userRepo, profileRepo, postRepo)
	e.GET("/profile", profileHandler.GetOwnProfile, requireSession)
	e.POST("/profile", profileHandler.UpdateProfile, requireSession)
	e.GET("/profile/:username", profileHandler.GetUserProfile, loadSession)
	logrus.Info("profile routes configured")

	logrus.Info("all routes configured")
}
