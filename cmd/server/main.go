package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crm-workspace-backend/internal/api/routes"
	"crm-workspace-backend/internal/config"
	"crm-workspace-backend/internal/database"
	"crm-workspace-backend/internal/events"
	"crm-workspace-backend/internal/jobs"
	"crm-workspace-backend/internal/logger"
	"crm-workspace-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

//	@title			CRM Workspace Backend API
//	@version		1.0
//	@description	Users, workspaces and workspace membership lifecycle.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Event notifiers
	var notifiers []events.Notifier
	var redisClient *redis.Client
	if cfg.EventsEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		streamNotifier := events.NewRedisStreamNotifier(redisClient, cfg.EventsStream)
		defer streamNotifier.Close()
		notifiers = append(notifiers, streamNotifier)
		logrus.WithField("stream", cfg.EventsStream).Info("Publishing workspace events to redis")
	}
	if cfg.EventLogEnabled {
		notifiers = append(notifiers, events.NewEventLogNotifier(repository.NewEventLogRepository(db)))
	}
	notifier := events.NewMultiNotifier(notifiers...)

	// Soft-deleted member purge
	purgeJob := jobs.NewMemberPurgeJob(
		repository.NewWorkspaceMemberRepository(db),
		repository.NewUserWorkspaceRepository(db),
		cfg.MemberPurgeSchedule,
		cfg.MemberPurgeRetention,
	)
	if err := purgeJob.Start(ctx); err != nil {
		logrus.Fatal("Failed to start member purge job:", err)
	}
	defer purgeJob.Stop()

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, redisClient, notifier)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.Infof("Starting server on port %s", port)
	if err := serve(ctx, srv, cfg.ShutdownTimeout); err != nil {
		logrus.Error("Server failed: ", err)
		return
	}
	logrus.Info("Server stopped")
}
