package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerbridge/backend/internal/middleware"
	"github.com/careerbridge/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "CareerBridge API is running",
		"version": "v1.0.0",
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(
	router *gin.Engine,
	authService service.IAuthService,
	profileService service.IProfileService,
	reviewService service.IReviewService,
	avatarService service.IAvatarService,
) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)

	authHandler := NewAuthHandler(authService)
	professionalHandler := NewProfessionalHandler(profileService)
	reviewHandler := NewReviewHandler(reviewService)
	adminHandler := NewAdminHandler(authService, profileService, reviewService, avatarService)

	v1 := router.Group("/api/v1")

	// Public routes: directory, detail, review list and submission
	authHandler.RegisterRoutes(v1)
	professionalHandler.RegisterRoutes(v1)
	reviewHandler.RegisterRoutes(v1)

	// Admin routes sit behind the session gate
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	adminHandler.RegisterRoutes(protected)
}
