// Package routes defines HTTP routes for the KPA form service.
package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kpa-platform/form-service/internal/config"
	"github.com/kpa-platform/form-service/internal/handlers"
	"github.com/kpa-platform/form-service/internal/middleware"
	"github.com/kpa-platform/form-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(
	router *gin.Engine,
	cfg *config.Config,
	tokenService service.TokenService,
	authHandler *handlers.AuthHandler,
	formHandler *handlers.FormHandler,
	healthHandler *handlers.HealthHandler,
) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(middleware.Metrics())
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	// Liveness and metrics
	router.GET("/", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		forms := v1.Group("/kpa/forms", middleware.RequireAuth(tokenService))
		{
			forms.POST("", formHandler.Create)
			forms.GET("", formHandler.List)
			forms.GET("/:id", formHandler.GetByID)
		}
	}
}
