package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/alozievictor/feedbackapp/internal/api/handler"
	"github.com/alozievictor/feedbackapp/internal/api/middleware"
	"github.com/alozievictor/feedbackapp/internal/core/domain"
	"github.com/alozievictor/feedbackapp/internal/core/service"
	"github.com/alozievictor/feedbackapp/internal/infrastructure/config"
	mongodb "github.com/alozievictor/feedbackapp/internal/infrastructure/db/mongo"
	redisdb "github.com/alozievictor/feedbackapp/internal/infrastructure/db/redis"
	"github.com/alozievictor/feedbackapp/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, blobs *storage.MinioStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("feedbackapp"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	fileRepo := mongodb.NewFileRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	inviteStore := redisdb.NewInviteStore(rdb)

	authService := service.NewAuthService(userRepo, inviteStore, cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(userRepo, inviteStore, log)
	projectService := service.NewProjectService(projectRepo, userRepo, inviteStore, fileRepo, feedbackRepo, messageRepo, activityRepo, blobs, log)
	fileService := service.NewFileService(fileRepo, feedbackRepo, projectRepo, activityRepo, blobs, cfg.MaxUploadBytes, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, fileRepo, projectRepo, activityRepo, log)
	messageService := service.NewMessageService(messageRepo, projectRepo, activityRepo, blobs, cfg.MaxUploadBytes, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	fileHandler := handler.NewFileHandler(fileService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	messageHandler := handler.NewMessageHandler(messageService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/invite/accept", authHandler.AcceptInvite)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Users ---
	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List, adminOnly)
	users.POST("/clients", userHandler.CreateClient, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete, adminOnly)
	users.PATCH("/:id/status", userHandler.ToggleActive, adminOnly)

	e.GET("/profile", userHandler.Profile, authRequired)
	e.PUT("/profile", userHandler.UpdateProfile, authRequired)

	// --- Projects ---
	projects := e.Group("/projects", authRequired)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create, adminOnly)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update, adminOnly)
	projects.DELETE("/:id", projectHandler.Delete, adminOnly)

	// --- Files ---
	// Nested routes reuse the ":id" segment name; Echo keeps a single
	// param name per path position.
	projects.POST("/:id/files", fileHandler.Upload, adminOnly)
	projects.GET("/:id/files", fileHandler.ListByProject)

	files := e.Group("/files", authRequired)
	files.GET("/:id", fileHandler.Get)
	files.DELETE("/:id", fileHandler.Delete, adminOnly)

	// --- Feedback ---
	files.GET("/:id/feedback", feedbackHandler.ListByFile)
	files.POST("/:id/feedback", feedbackHandler.Create)

	feedback := e.Group("/feedback", authRequired)
	feedback.PUT("/:id", feedbackHandler.Update)
	feedback.DELETE("/:id", feedbackHandler.Delete)
	feedback.PATCH("/:id/resolve", feedbackHandler.ToggleResolve, adminOnly)

	// --- Messages ---
	projects.GET("/:id/messages", messageHandler.ListByProject)
	projects.POST("/:id/messages", messageHandler.Create)

	messages := e.Group("/messages", authRequired)
	messages.PATCH("/:id/read", messageHandler.MarkRead)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb, blobs)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
