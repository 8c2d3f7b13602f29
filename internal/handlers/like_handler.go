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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *LikeHandler {
	return &LikeHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike likes a post the session user has not liked yet and unlikes one
// they have, keeping the like count and the liker set in step. Liking then
// unliking returns the post to its exact previous like state.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.ToggleLike(uint(postID), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.PostResponse{Data: projectPost(h.userRepository, post)})
}
