package router

import (
	"log"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/handlers"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/middleware"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/repositories"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/security"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/token"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, userRepo repositories.UserRepository, postRepo repositories.PostRepository, tokens *token.Service) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/auth")
	authHandler := handlers.NewAuthHandler(userRepo, security.NewHasher(), tokens)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes (no session required) ---
	public := e.Group("/api")

	// --- Protected routes (require a bearer JWT) ---
	api := e.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(tokens))
	log.Println("JWT authentication middleware applied to protected routes.")

	// User profile routes
	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterProfileRoutes(api)
	public.GET("/users/:id", userHandler.GetUser)
	log.Println("User routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(public, api)
	log.Println("Post routes configured.")

	// Like routes
	likeHandler := handlers.NewLikeHandler(postRepo, userRepo)
	likeHandler.RegisterLikeRoutes(api)
	log.Println("Like routes configured.")

	log.Println("All routes configured.")
}
