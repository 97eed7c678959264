package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/colefield/ripple/internal/domain"
	"github.com/colefield/ripple/internal/service"
)

// PostHandler handles post, like, and comment HTTP requests.
type PostHandler struct {
	posts *service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// HandleCreate creates a post for the authenticated user.
// POST /post
// Request:  {"description":"...","image":"..."}
// Response: {"post": {...}}
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req struct {
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	post, err := h.posts.Create(r.Context(), user.ID, req.Description, req.Image)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("create post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": toPostDTO(post)})
}

// HandleGet returns a single post with likes and comments.
// GET /post/{id}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	post, err := h.posts.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("get post", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": toPostDTO(post)})
}

// HandleFeed returns the most recent posts.
// GET /feed
func (h *PostHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.Feed(r.Context())
	if err != nil {
		slog.Error("list feed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": toPostDTOs(posts)})
}

// HandleListByUser returns one user's posts, newest first.
// GET /user/{id}/posts
func (h *PostHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	posts, err := h.posts.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("list user posts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"posts": toPostDTOs(posts)})
}

// HandleDelete deletes the authenticated user's post.
// DELETE /post/{id}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.posts.Delete(r.Context(), postID, user.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusForbidden, "Only the author can delete this post.")
		default:
			slog.Error("delete post", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleLike toggles the authenticated user's like on a post.
// POST /post/{id}/like
// Response: {"post": {...}} with the updated like set.
func (h *PostHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	post, err := h.posts.ToggleLike(r.Context(), postID, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("toggle like", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"post": toPostDTO(post)})
}

// HandleListComments returns a post's comments in insertion order.
// GET /post/{id}/comments
func (h *PostHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	comments, err := h.posts.Comments(r.Context(), postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Post not found.")
			return
		}
		slog.Error("list comments", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

// HandleAddComment appends a comment to a post and returns the updated
// comment sequence.
// POST /post/{id}/comment
// Request:  {"text":"..."}
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	postID, ok := postIDFromPath(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}
	if err := readValidJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	comments, err := h.posts.AddComment(r.Context(), postID, user.ID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "Post not found.")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("add comment", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, toCommentDTOs(comments))
}

func postIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id.")
		return 0, false
	}
	return id, true
}
