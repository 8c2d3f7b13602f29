package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/models"
)

const (
	// DefaultListLimit applies when a list request carries no limit.
	DefaultListLimit = 30
	// MaxListLimit caps any requested limit.
	MaxListLimit = 100
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(authorID uint, text string) (*models.Post, error)
	GetPostByID(id uint) (*models.Post, error)
	ListPosts(authorID *uint, limit int) ([]models.Post, error)
	SetLikeState(postID uint, likeCount int, likerIDs []uint) (*models.Post, error)
	ToggleLike(postID, userID uint) (*models.Post, error)
	DeletePost(postID, requesterID uint) (*models.Post, error)
}

// MemoryPostRepository implements PostRepository on an in-memory table.
// Like MemoryUserRepository it is intentionally volatile and guarded by a
// single RWMutex; every value handed out is a copy with its own liker slice.
type MemoryPostRepository struct {
	mu     sync.RWMutex
	posts  []models.Post
	nextID uint
}

// NewMemoryPostRepository creates an empty MemoryPostRepository.
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{nextID: 1}
}

func clonePost(p models.Post) models.Post {
	p.LikerIDs = append([]uint{}, p.LikerIDs...)
	return p
}

// CreatePost adds a new post authored by authorID. The text is trimmed and
// must be non-empty. The author id always comes from the authenticated
// session, never from a request payload.
func (r *MemoryPostRepository) CreatePost(authorID uint, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	post := models.Post{
		ID:        r.nextID,
		Text:      text,
		AuthorID:  authorID,
		LikeCount: 0,
		LikerIDs:  []uint{},
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.posts = append(r.posts, post)

	out := clonePost(post)
	return &out, nil
}

// GetPostByID retrieves a post by id.
func (r *MemoryPostRepository) GetPostByID(id uint) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			post := clonePost(r.posts[i])
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}

// ListPosts returns posts sorted by creation time, newest first, stably, and
// optionally filtered by author. The limit is clamped to [0, MaxListLimit];
// a limit of zero yields an empty result.
func (r *MemoryPostRepository) ListPosts(authorID *uint, limit int) ([]models.Post, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Post, 0, len(r.posts))
	for i := range r.posts {
		if authorID != nil && r.posts[i].AuthorID != *authorID {
			continue
		}
		list = append(list, clonePost(r.posts[i]))
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// SetLikeState replaces the like count and liker set of a post wholesale
// with caller-supplied values. It performs no ownership check and does not
// validate that the count matches the set; a caller bypassing the toggle can
// desynchronize the two or set a negative count. This permissive contract is
// deliberate and isolated here so a derived-count variant could replace it
// without touching the handlers.
func (r *MemoryPostRepository) SetLikeState(postID uint, likeCount int, likerIDs []uint) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == postID {
			r.posts[i].LikeCount = likeCount
			r.posts[i].LikerIDs = append([]uint{}, likerIDs...)
			post := clonePost(r.posts[i])
			return &post, nil
		}
	}
	return nil, ErrPostNotFound
}

// ToggleLike flips the like of userID on a post: a current liker is removed
// and the count decremented, anyone else is added and the count incremented.
// The read-modify-write runs entirely under the collection write lock so
// concurrent toggles on the same post cannot lose an update.
func (r *MemoryPostRepository) ToggleLike(postID, userID uint) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != postID {
			continue
		}

		hasLiked := false
		for _, id := range r.posts[i].LikerIDs {
			if id == userID {
				hasLiked = true
				break
			}
		}

		if hasLiked {
			likers := make([]uint, 0, len(r.posts[i].LikerIDs)-1)
			for _, id := range r.posts[i].LikerIDs {
				if id != userID {
					likers = append(likers, id)
				}
			}
			r.posts[i].LikerIDs = likers
			r.posts[i].LikeCount--
		} else {
			r.posts[i].LikerIDs = append(r.posts[i].LikerIDs, userID)
			r.posts[i].LikeCount++
		}

		post := clonePost(r.posts[i])
		return &post, nil
	}
	return nil, ErrPostNotFound
}

// DeletePost removes a post. Only the author may delete it; anyone else gets
// ErrForbidden and the post is left untouched. On success the just-deleted
// post is returned.
func (r *MemoryPostRepository) DeletePost(postID, requesterID uint) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != postID {
			continue
		}
		if r.posts[i].AuthorID != requesterID {
			return nil, ErrForbidden
		}
		post := clonePost(r.posts[i])
		r.posts = append(r.posts[:i], r.posts[i+1:]...)
		return &post, nil
	}
	return nil, ErrPostNotFound
}
