// File: /main.go
package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"socialnet-api/config"
	"socialnet-api/database"
	"socialnet-api/jobs"
	"socialnet-api/middleware"
	"socialnet-api/routes"
	"socialnet-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to migrate database")
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Per-user friend request limiter, shared across all in-flight calls
	sendLimiter := services.NewSendLimiter(cfg.RateLimitWindowSeconds, cfg.RateLimitMaxRequests)

	cleanupJob := jobs.NewLimiterCleanupJob(sendLimiter, 10*time.Minute, time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Create router
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, sendLimiter)

	logrus.WithFields(logrus.Fields{"port": cfg.Port}).Info("Starting socialnet API server")

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
