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

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository // to resolve authors when shaping responses
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post routes. Listing is public; creation,
// like updates and deletion require a session.
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.ListPosts)
	protected.POST("/posts", h.CreatePost)
	protected.PUT("/posts/:id", h.UpdatePost)
	protected.DELETE("/posts/:id", h.DeletePost)
}

// projectPost shapes a post for the outside. The author is resolved at
// shaping time; a vanished author shapes as null.
func projectPost(users repositories.UserRepository, p *models.Post) models.PostProjection {
	proj := models.PostProjection{
		ID:        p.ID,
		Text:      p.Text,
		LikeCount: p.LikeCount,
		LikerIDs:  p.LikerIDs,
		CreatedAt: p.CreatedAt,
	}
	if author, err := users.GetUserByID(p.AuthorID); err == nil {
		proj.Author = &models.PostAuthor{ID: author.ID, Username: author.Username}
	}
	return proj
}

// ListPosts returns posts newest first, optionally filtered by author and
// capped by limit.
func (h *PostHandler) ListPosts(c echo.Context) error {
	var authorID *uint
	if v := c.QueryParam("author_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid author ID")
		}
		u := uint(id)
		authorID = &u
	}

	limit := repositories.DefaultListLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid limit")
		}
		limit = n
	}

	posts, err := h.postRepository.ListPosts(authorID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	projections := make([]models.PostProjection, 0, len(posts))
	for i := range posts {
		projections = append(projections, projectPost(h.userRepository, &posts[i]))
	}
	return c.JSON(http.StatusOK, models.PostListResponse{Data: projections})
}

// CreatePost creates a new post authored by the session user. Any author id
// in the payload is ignored.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(uint)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.CreatePost(userID, req.Text)
	if err != nil {
		if errors.Is(err, repositories.ErrEmptyText) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, models.PostResponse{Data: projectPost(h.userRepository, post)})
}

// UpdatePost replaces the like state of a post with the payload values. Any
// session holder may call it, and absent fields keep their current value.
// The supplied values are trusted wholesale; the toggle endpoint is the
// sanctioned path for like mutations.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	current, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	likeCount := current.LikeCount
	if req.LikeCount != nil {
		likeCount = *req.LikeCount
	}
	likerIDs := current.LikerIDs
	if req.LikerIDs != nil {
		likerIDs = *req.LikerIDs
	}

	post, err := h.postRepository.SetLikeState(uint(postID), likeCount, likerIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, models.PostResponse{Data: projectPost(h.userRepository, post)})
}

// DeletePost deletes a post. Only its author may do so; the just-deleted
// projection is returned on success.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := c.Get(middleware.UserIDKey).(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.DeletePost(uint(postID), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		if errors.Is(err, repositories.ErrForbidden) {
			return echo.NewHTTPError(http.StatusForbidden, "You can only delete your own posts")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, models.PostResponse{Data: projectPost(h.userRepository, post)})
}
