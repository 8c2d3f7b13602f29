package models

import (
	"time"
)

// Post represents a feed post held by the post repository.
type Post struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	AuthorID  uint      `json:"author_id"` // set from the session at creation, never from the payload
	LikeCount int       `json:"like_count"`
	LikerIDs  []uint    `json:"liker_ids"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post.
// Any author field a client sends is ignored; the author is the session user.
type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdatePostRequest replaces like state wholesale. Both fields are optional;
// an absent field keeps the post's current value. Supplied values are trusted
// as-is, so a caller bypassing the toggle endpoint can desynchronize the
// count from the liker set or drive the count negative.
type UpdatePostRequest struct {
	LikeCount *int    `json:"likeCount,omitempty"`
	LikerIDs  *[]uint `json:"likerIds,omitempty"`
}

// PostAuthor is the author fragment embedded in a post projection.
type PostAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PostProjection is the outward shape of a post. Author is nil when the
// authoring user no longer exists.
type PostProjection struct {
	ID        uint        `json:"id"`
	Text      string      `json:"text"`
	LikeCount int         `json:"likeCount"`
	Author    *PostAuthor `json:"author"`
	LikerIDs  []uint      `json:"likerIds"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PostResponse wraps a single post projection.
type PostResponse struct {
	Data PostProjection `json:"data"`
}

// PostListResponse wraps a list of post projections.
type PostListResponse struct {
	Data []PostProjection `json:"data"`
}
