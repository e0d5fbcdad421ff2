// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventease-api/config"
	"eventease-api/controllers"
	"eventease-api/middleware"
	"eventease-api/repositories"
	"eventease-api/services"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, repo *repositories.EventRepository, authService *services.AuthService, weatherService *services.WeatherService) {
	r.Use(middleware.SecurityHeaders())

	// Controllers
	authController := controllers.NewAuthController(authService, cfg.JWTSecret)
	eventController := controllers.NewEventController(repo, weatherService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
			"weather": weatherService.Configured(),
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(120, 20))

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/auth/me", authController.Me)

		// Event routes
		events := protected.Group("/events")
		{
			events.GET("/", eventController.GetEvents)
			events.POST("/", eventController.CreateEvent)
			events.POST("/refresh", eventController.RefreshEvents)
			events.GET("/calendar", eventController.GetCalendar)
			events.GET("/:id", eventController.GetEvent)
			events.PUT("/:id", eventController.UpdateEvent)
			events.DELETE("/:id", eventController.DeleteEvent)
			events.POST("/:id/toggle-participation", eventController.ToggleParticipation)
			events.GET("/:id/weather", eventController.GetEventWeather)
		}
	}
}

// SetupCORS allows the development UI to reach the local service from a
// different origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
