package handler

import (
	"time"

	"github.com/colefield/ripple/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is
// deliberately absent; it never leaves the server.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// CommentDTO is the JSON representation of a comment.
type CommentDTO struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

func toCommentDTO(c domain.Comment) CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func toCommentDTOs(comments []domain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}

// PostDTO is the JSON representation of a post with its like set and comments.
type PostDTO struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	Description string       `json:"description"`
	Image       string       `json:"image,omitempty"`
	Likes       []int64      `json:"likes"`
	LikeCount   int          `json:"likeCount"`
	Comments    []CommentDTO `json:"comments"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

func toPostDTO(p *domain.Post) PostDTO {
	likes := p.Likes
	if likes == nil {
		likes = []int64{}
	}
	return PostDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Description: p.Description,
		Image:       p.Image,
		Likes:       likes,
		LikeCount:   len(likes),
		Comments:    toCommentDTOs(p.Comments),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func toPostDTOs(posts []domain.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i := range posts {
		dtos[i] = toPostDTO(&posts[i])
	}
	return dtos
}
