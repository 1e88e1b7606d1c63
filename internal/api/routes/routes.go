package routes

import (
	"crm-workspace-backend/internal/api/handlers"
	"crm-workspace-backend/internal/api/middleware"
	"crm-workspace-backend/internal/config"
	"crm-workspace-backend/internal/events"
	"crm-workspace-backend/internal/repository"
	"crm-workspace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// redisClient may be nil when event streaming is disabled.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, notifier events.Notifier) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	userWorkspaceRepo := repository.NewUserWorkspaceRepository(db)
	memberRepo := repository.NewWorkspaceMemberRepository(db)
	eventLogRepo := repository.NewEventLogRepository(db)

	// Initialize services
	workspaceService := service.NewWorkspaceService(workspaceRepo, eventLogRepo, notifier)
	userWorkspaceService := service.NewUserWorkspaceService(userWorkspaceRepo)
	userRoleService := service.NewUserRoleService(userWorkspaceRepo)
	userService := service.NewUserService(
		userRepo,
		memberRepo,
		userWorkspaceService,
		userRoleService,
		workspaceService,
		notifier,
		validator,
		cfg.UserDeletionConcurrency,
	)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	userHandler := handlers.NewUserHandler(userService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService, userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetUserByEmail)
			users.GET("/:id", userHandler.GetUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/verify-email", userHandler.VerifyEmail)
			users.GET("/:id/workspaces/:workspaceId/access", userHandler.CheckWorkspaceAccess)
		}

		workspaces := v1.Group("/workspaces")
		{
			workspaces.GET("/:id", workspaceHandler.GetWorkspace)
			workspaces.DELETE("/:id", workspaceHandler.DeleteWorkspace)
			workspaces.PATCH("/:id/status", workspaceHandler.UpdateStatus)
			workspaces.GET("/:id/members", workspaceHandler.ListMembers)
			workspaces.GET("/:id/members/:userId", workspaceHandler.GetMember)
			workspaces.DELETE("/:id/members/:userId", workspaceHandler.RemoveMember)
			workspaces.POST("/:id/members/:userId/deactivate", workspaceHandler.DeactivateMember)
			workspaces.GET("/:id/events", workspaceHandler.ListEvents)
		}
	}

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, redisClient)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
