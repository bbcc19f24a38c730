package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecolens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	if cfg.RateLimit.PerIP > 0 {
		router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}

	// Health check endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/api/health", handler.HealthCheck)

	// API routes
	api := router.Group("/api")
	{
		product := api.Group("/product")
		{
			product.GET("/analyze", handler.AnalyzeProduct)
		}
	}

	return router
}
