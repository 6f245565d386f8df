// Package main is the entry point for the KPA form service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/kpa-platform/form-service/internal/config"
	"github.com/kpa-platform/form-service/internal/database"
	"github.com/kpa-platform/form-service/internal/handlers"
	"github.com/kpa-platform/form-service/internal/repository"
	"github.com/kpa-platform/form-service/internal/routes"
	"github.com/kpa-platform/form-service/internal/service"
	"github.com/kpa-platform/form-service/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	if err := database.SeedUser(db, cfg.SeedPhone, service.HashPassword(cfg.SeedPassword)); err != nil {
		slog.Error("failed to seed login account", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	formRepo := repository.NewFormRepository(db)

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiry)
	authService := service.NewAuthService(userRepo, tokenService)
	formService := service.NewFormService(formRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	formHandler := handlers.NewFormHandler(formService)
	healthHandler := handlers.NewHealthHandler()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, cfg, tokenService, authHandler, formHandler, healthHandler)

	slog.Info("starting kpa form service", "port", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
