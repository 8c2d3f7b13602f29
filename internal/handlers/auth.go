package handlers

import (
	"errors"
	"net/http"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/models"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/repositories"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/security"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/token"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	userRepository repositories.UserRepository
	hasher         *security.Hasher
	tokens         *token.Service
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userRepo repositories.UserRepository, hasher *security.Hasher, tokens *token.Service) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		hasher:         hasher,
		tokens:         tokens,
	}
}

// RegisterAuthRoutes registers authentication-related routes.
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/local/register", h.Register)
	g.POST("/local", h.Login)
}

// Register creates a new account and returns a session token together with
// the safe user projection.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	hash, err := h.hasher.HashPassword(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user, err := h.userRepository.CreateUser(req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) || errors.Is(err, repositories.ErrDuplicateUsername) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	jwt, err := h.tokens.Issue(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, models.AuthResponse{JWT: jwt, User: user.Safe()})
}

// Login authenticates by identifier (email or username) and password. An
// unknown identifier and a wrong password produce the same response.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(req.Identifier)
	if err != nil {
		user, err = h.userRepository.GetUserByUsername(req.Identifier)
	}
	if err != nil || !h.hasher.CheckPassword(user.Password, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid identifier or password")
	}

	jwt, err := h.tokens.Issue(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, models.AuthResponse{JWT: jwt, User: user.Safe()})
}
