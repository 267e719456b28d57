// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"socialnet-api/config"
	"socialnet-api/controllers"
	"socialnet-api/middleware"
	"socialnet-api/repositories"
	"socialnet-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sendLimiter *services.SendLimiter) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	requestRepo := repositories.NewFriendRequestRepository(db)

	// Services
	accountService := services.NewAccountService(userRepo)
	friendService := services.NewFriendService(userRepo, requestRepo, sendLimiter)

	// Controllers
	authController := controllers.NewAuthController(accountService, cfg.JWTSecret)
	userController := controllers.NewUserController(accountService)
	friendController := controllers.NewFriendController(friendService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// User search is public, like signup
	v1.GET("/users/search", userController.Search)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Friend request routes
		friendRequests := protected.Group("/friend-requests")
		{
			friendRequests.POST("/send", friendController.SendFriendRequest)
			friendRequests.POST("/:request_id/accept", friendController.AcceptFriendRequest)
			friendRequests.POST("/:request_id/reject", friendController.RejectFriendRequest)
			friendRequests.GET("/pending", friendController.GetPendingRequests)
		}

		protected.GET("/friends", friendController.GetFriends)
	}
}
