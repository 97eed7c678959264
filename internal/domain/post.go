package domain

import (
	"context"
	"time"
)

// Post is a feed entry authored by a user. Likes and Comments are loaded
// alongside the post; the like set holds each user ID at most once.
type Post struct {
	ID          int64
	UserID      int64
	Description string
	Image       string // filename reference, empty when no image attached
	Likes       []int64
	Comments    []Comment
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Comment is an append-only sub-entity of a post. Ordering is insertion order.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Username  string
	Text      string
	CreatedAt time.Time
}

// PostRepository defines persistence operations for posts and their
// embedded like and comment collections.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListRecent(ctx context.Context, limit int) ([]Post, error)
	ListByUser(ctx context.Context, userID int64) ([]Post, error)
	Delete(ctx context.Context, id int64) error

	// ToggleLike adds userID to the post's like set if absent, removes it if
	// present. The flip happens atomically inside one transaction.
	ToggleLike(ctx context.Context, postID, userID int64) error

	AddComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, postID int64) ([]Comment, error)
}
