// File: /main.go
package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventease-api/config"
	"eventease-api/database"
	"eventease-api/repositories"
	"eventease-api/routes"
	"eventease-api/services"
	"eventease-api/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Open the on-device database
	db, err := database.Initialize(cfg.DataPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Durable store and the services on top of it
	store := storage.New(db, logger)

	repo := repositories.NewEventRepository(store, logger)
	repo.Load(context.Background())

	authService := services.NewAuthService(store, store, logger)
	weatherService := services.NewWeatherService(logger, cfg.OpenWeatherAPIKey)

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Setup routes
	routes.SetupRoutes(router, cfg, repo, authService, weatherService)

	// Start server
	log.Printf("Starting EventEase local service on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
