package main

import (
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/repositories"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/router"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/token"
	"github.com/jobeejobaa/mini-social-jotai-pwa/pkg/config"
	"github.com/jobeejobaa/mini-social-jotai-pwa/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// In-memory stores: a restart resets all data
	userRepo := repositories.NewMemoryUserRepository()
	postRepo := repositories.NewMemoryPostRepository()
	tokens := token.NewService(cfg.JWTSecret)

	// Setup routes and dependencies
	router.SetupRoutes(e, userRepo, postRepo, tokens)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
