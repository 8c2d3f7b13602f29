package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/middleware"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/models"
	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/repositories"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers the authenticated profile routes. The
// update path keeps the users-permissions prefix the original client expects.
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.PUT("/users-permissions/users/me", h.UpdateMe)
}

// GetMe retrieves the authenticated user's own profile. The token may
// outlive the user record (the store is volatile), in which case the session
// is reported as invalid.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(uint)

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session expired or invalid")
	}
	return c.JSON(http.StatusOK, user.Safe())
}

// UpdateMe updates the authenticated user's username and/or description.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(uint)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	user, err := h.userRepository.UpdateProfile(userID, req.Username, req.Description)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user.Safe())
}

// GetUser retrieves any user's public profile by id. No auth required.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user.Safe())
}
