package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/colefield/ripple/internal/domain"
	"github.com/colefield/ripple/internal/metrics"
)

const feedLimit = 50

// PostService orchestrates post creation, the feed, like toggling, and
// comment threads.
type PostService struct {
	posts domain.PostRepository
	users domain.UserRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts domain.PostRepository, users domain.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// Create persists a new post. A post needs a description, an image, or both.
func (s *PostService) Create(ctx context.Context, userID int64, description, image string) (*domain.Post, error) {
	description = strings.TrimSpace(description)
	if description == "" && image == "" {
		return nil, fmt.Errorf("%w: a post needs a description or an image", domain.ErrInvalidInput)
	}

	post := &domain.Post{
		UserID:      userID,
		Description: description,
		Image:       image,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Get returns a post with its like set and comments loaded.
func (s *PostService) Get(ctx context.Context, postID int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

// Feed returns the most recent posts, newest first.
func (s *PostService) Feed(ctx context.Context) ([]domain.Post, error) {
	return s.posts.ListRecent(ctx, feedLimit)
}

// ListByUser returns a single user's posts, newest first.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, postID, userID int64) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrUnauthorized
	}
	return s.posts.Delete(ctx, postID)
}

// ToggleLike flips userID's like on the post and returns the updated post.
// Two identical toggles restore the original like set.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID int64) (*domain.Post, error) {
	if err := s.posts.ToggleLike(ctx, postID, userID); err != nil {
		return nil, err
	}

	metrics.LikeTogglesTotal.Inc()
	return s.posts.GetByID(ctx, postID)
}

// AddComment appends a comment to the post and returns the full ordered
// comment sequence. The username is resolved from the commenting user, and
// the timestamp is server-assigned.
func (s *PostService) AddComment(ctx context.Context, postID, userID int64, text string) ([]domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get commenting user: %w", err)
	}

	comment := &domain.Comment{
		PostID:   postID,
		UserID:   userID,
		Username: user.Username,
		Text:     text,
	}
	if err := s.posts.AddComment(ctx, comment); err != nil {
		return nil, err
	}

	metrics.CommentsTotal.Inc()
	return s.posts.ListComments(ctx, postID)
}

// Comments returns the post's comment sequence in insertion order.
func (s *PostService) Comments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.posts.ListComments(ctx, postID)
}
