package main

import (
	"log"

	"userhub/internal/config"
	"userhub/internal/controllers"
	"userhub/internal/database"
	"userhub/internal/middleware"
	"userhub/internal/repository"
	"userhub/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repository, service, and controller
	userRepo := repository.NewPostgresUserRepository(db)
	userService := service.NewUserService(userRepo)
	userController := controllers.NewUserController(userService)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigin))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with rate limiting
	api := router.Group("/api")
	api.Use(rateLimiter.LimitMiddleware())
	{
		api.POST("/users", userController.CreateUser)
		api.GET("/users", userController.GetUsers)
		api.PUT("/users/:id", userController.UpdateUser)
		api.DELETE("/users/:id", userController.DeleteUser)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
