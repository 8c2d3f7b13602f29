package repositories

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCreatePostTrimsAndRejectsEmptyText(t *testing.T) {
	r := NewMemoryPostRepository()

	if _, err := r.CreatePost(1, "   "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("CreatePost(whitespace) = %v, want ErrEmptyText", err)
	}

	post, err := r.CreatePost(1, "  hello  ")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Text != "hello" {
		t.Errorf("text = %q, want trimmed %q", post.Text, "hello")
	}
	if post.AuthorID != 1 || post.LikeCount != 0 || len(post.LikerIDs) != 0 {
		t.Errorf("unexpected new post state: %+v", post)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	r := NewMemoryPostRepository()

	for _, text := range []string{"first", "second", "third"} {
		if _, err := r.CreatePost(1, text); err != nil {
			t.Fatalf("CreatePost(%q): %v", text, err)
		}
		time.Sleep(time.Millisecond) // distinct creation timestamps
	}

	posts, err := r.ListPosts(nil, DefaultListLimit)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	for i := 0; i < len(posts)-1; i++ {
		if posts[i].CreatedAt.Before(posts[i+1].CreatedAt) {
			t.Errorf("posts[%d] older than posts[%d]", i, i+1)
		}
	}
	if posts[0].Text != "third" || posts[2].Text != "first" {
		t.Errorf("order = %q, %q, %q; want newest first", posts[0].Text, posts[1].Text, posts[2].Text)
	}
}

func TestListPostsFiltersByAuthor(t *testing.T) {
	r := NewMemoryPostRepository()
	r.CreatePost(1, "from alice")
	r.CreatePost(2, "from bob")
	r.CreatePost(1, "also alice")

	author := uint(1)
	posts, err := r.ListPosts(&author, DefaultListLimit)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts for author 1, want 2", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != 1 {
			t.Errorf("post %d has author %d, want 1", p.ID, p.AuthorID)
		}
	}
}

func TestListPostsLimitClamping(t *testing.T) {
	r := NewMemoryPostRepository()
	for i := 0; i < MaxListLimit+5; i++ {
		if _, err := r.CreatePost(1, "post"); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
	}

	posts, _ := r.ListPosts(nil, 0)
	if len(posts) != 0 {
		t.Errorf("limit 0 returned %d posts, want 0", len(posts))
	}

	posts, _ = r.ListPosts(nil, -3)
	if len(posts) != 0 {
		t.Errorf("negative limit returned %d posts, want 0", len(posts))
	}

	posts, _ = r.ListPosts(nil, 1000)
	if len(posts) != MaxListLimit {
		t.Errorf("limit 1000 returned %d posts, want clamp to %d", len(posts), MaxListLimit)
	}

	posts, _ = r.ListPosts(nil, 2)
	if len(posts) != 2 {
		t.Errorf("limit 2 returned %d posts", len(posts))
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	r := NewMemoryPostRepository()
	post, _ := r.CreatePost(1, "hello")

	liked, err := r.ToggleLike(post.ID, 2)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if liked.LikeCount != 1 || len(liked.LikerIDs) != 1 || liked.LikerIDs[0] != 2 {
		t.Errorf("after like: count=%d likers=%v", liked.LikeCount, liked.LikerIDs)
	}

	unliked, err := r.ToggleLike(post.ID, 2)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if unliked.LikeCount != 0 || len(unliked.LikerIDs) != 0 {
		t.Errorf("like then unlike did not restore state: count=%d likers=%v", unliked.LikeCount, unliked.LikerIDs)
	}

	if _, err := r.ToggleLike(999, 2); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("ToggleLike(999) = %v, want ErrPostNotFound", err)
	}
}

func TestConcurrentTogglesLoseNoUpdate(t *testing.T) {
	r := NewMemoryPostRepository()
	post, _ := r.CreatePost(1, "hello")

	const likers = 50
	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			if _, err := r.ToggleLike(post.ID, userID); err != nil {
				t.Errorf("ToggleLike(%d): %v", userID, err)
			}
		}(uint(i + 100))
	}
	wg.Wait()

	final, err := r.GetPostByID(post.ID)
	if err != nil {
		t.Fatalf("GetPostByID: %v", err)
	}
	if final.LikeCount != likers {
		t.Errorf("like count = %d, want %d (lost update)", final.LikeCount, likers)
	}
	if len(final.LikerIDs) != likers {
		t.Errorf("liker set size = %d, want %d", len(final.LikerIDs), likers)
	}
}

func TestSetLikeStateTrustsCaller(t *testing.T) {
	r := NewMemoryPostRepository()
	post, _ := r.CreatePost(1, "hello")

	// The raw update trusts count and membership wholesale, even when they
	// disagree or the count is negative.
	updated, err := r.SetLikeState(post.ID, -5, []uint{7, 8})
	if err != nil {
		t.Fatalf("SetLikeState: %v", err)
	}
	if updated.LikeCount != -5 {
		t.Errorf("like count = %d, want -5", updated.LikeCount)
	}
	if len(updated.LikerIDs) != 2 {
		t.Errorf("liker set = %v, want [7 8]", updated.LikerIDs)
	}

	if _, err := r.SetLikeState(999, 0, nil); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("SetLikeState(999) = %v, want ErrPostNotFound", err)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	r := NewMemoryPostRepository()
	post, _ := r.CreatePost(1, "hello")

	if _, err := r.DeletePost(post.ID, 2); !errors.Is(err, ErrForbidden) {
		t.Errorf("DeletePost by non-author = %v, want ErrForbidden", err)
	}
	// A forbidden delete leaves the post untouched.
	if kept, err := r.GetPostByID(post.ID); err != nil || kept.Text != "hello" {
		t.Errorf("post changed after forbidden delete: %v, %v", kept, err)
	}

	deleted, err := r.DeletePost(post.ID, 1)
	if err != nil {
		t.Fatalf("DeletePost by author: %v", err)
	}
	if deleted.ID != post.ID {
		t.Errorf("deleted projection id = %d, want %d", deleted.ID, post.ID)
	}

	if _, err := r.GetPostByID(post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("GetPostByID after delete = %v, want ErrPostNotFound", err)
	}
	if _, err := r.DeletePost(post.ID, 1); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("second delete = %v, want ErrPostNotFound", err)
	}
}

func TestReturnedPostsAreCopies(t *testing.T) {
	r := NewMemoryPostRepository()
	post, _ := r.CreatePost(1, "hello")
	r.ToggleLike(post.ID, 2)

	got, _ := r.GetPostByID(post.ID)
	got.LikerIDs[0] = 999
	got.Text = "tampered"

	stored, _ := r.GetPostByID(post.ID)
	if stored.LikerIDs[0] != 2 || stored.Text != "hello" {
		t.Errorf("mutating a returned post leaked into the store: %+v", stored)
	}
}
