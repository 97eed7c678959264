package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/colefield/ripple/internal/domain"
	"github.com/colefield/ripple/internal/repository/sqlite"
)

func createTestUser(t *testing.T, db *sqlite.DB, email, username string) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Username: username, PasswordHash: "hash"}
	if err := sqlite.NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *sqlite.DB, userID int64, description string) *domain.Post {
	t.Helper()
	post := &domain.Post{UserID: userID, Description: description}
	if err := sqlite.NewPostRepository(db).Create(context.Background(), post); err != nil {
		t.Fatalf("create test post: %v", err)
	}
	return post
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	post := createTestPost(t, db, author.ID, "first post")

	if post.ID == 0 {
		t.Fatal("expected post ID to be set")
	}

	got, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Description != "first post" {
		t.Fatalf("expected description %q, got %q", "first post", got.Description)
	}
	if len(got.Likes) != 0 {
		t.Fatalf("expected no likes, got %d", len(got.Likes))
	}
	if len(got.Comments) != 0 {
		t.Fatalf("expected no comments, got %d", len(got.Comments))
	}
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_ToggleLike(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	liker := createTestUser(t, db, "liker@example.com", "liker")
	post := createTestPost(t, db, author.ID, "like me")

	// First toggle adds the like.
	if err := repo.ToggleLike(ctx, post.ID, liker.ID); err != nil {
		t.Fatalf("first ToggleLike: %v", err)
	}
	got, err := repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Likes) != 1 || got.Likes[0] != liker.ID {
		t.Fatalf("expected like set [%d], got %v", liker.ID, got.Likes)
	}

	// Second toggle removes it again.
	if err := repo.ToggleLike(ctx, post.ID, liker.ID); err != nil {
		t.Fatalf("second ToggleLike: %v", err)
	}
	got, err = repo.GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Likes) != 0 {
		t.Fatalf("expected empty like set after double toggle, got %v", got.Likes)
	}
}

func TestPostRepository_ToggleLike_MissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	user := createTestUser(t, db, "u@example.com", "u")
	err := repo.ToggleLike(context.Background(), 9999, user.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_Comments_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	post := createTestPost(t, db, author.ID, "discuss")

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		comment := &domain.Comment{PostID: post.ID, UserID: author.ID, Username: "author", Text: text}
		if err := repo.AddComment(ctx, comment); err != nil {
			t.Fatalf("AddComment %q: %v", text, err)
		}
		if comment.ID == 0 {
			t.Fatal("expected comment ID to be set")
		}
		if comment.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
	}

	comments, err := repo.ListComments(ctx, post.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(comments) != len(texts) {
		t.Fatalf("expected %d comments, got %d", len(texts), len(comments))
	}
	for i, text := range texts {
		if comments[i].Text != text {
			t.Fatalf("expected comment %d to be %q, got %q", i, text, comments[i].Text)
		}
	}
}

func TestPostRepository_AddComment_MissingPost(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)

	user := createTestUser(t, db, "u@example.com", "u")
	comment := &domain.Comment{PostID: 9999, UserID: user.ID, Username: "u", Text: "hello"}
	err := repo.AddComment(context.Background(), comment)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostRepository_ListRecent_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	createTestPost(t, db, author.ID, "older")
	newer := createTestPost(t, db, author.ID, "newer")

	posts, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].ID != newer.ID {
		t.Fatalf("expected newest post first, got post %d", posts[0].ID)
	}
}

func TestPostRepository_Delete_CascadesLikesAndComments(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author@example.com", "author")
	post := createTestPost(t, db, author.ID, "doomed")

	if err := repo.ToggleLike(ctx, post.ID, author.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	comment := &domain.Comment{PostID: post.ID, UserID: author.ID, Username: "author", Text: "bye"}
	if err := repo.AddComment(ctx, comment); err != nil {
		t.Fatalf("AddComment: %v", err)
	}

	if err := repo.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var likeCount, commentCount int
	db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM post_likes WHERE post_id = ?", post.ID).Scan(&likeCount)
	db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM post_comments WHERE post_id = ?", post.ID).Scan(&commentCount)
	if likeCount != 0 || commentCount != 0 {
		t.Fatalf("expected cascaded delete, got %d likes and %d comments", likeCount, commentCount)
	}

	if err := repo.Delete(ctx, post.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
