package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/colefield/ripple/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
// Likes live in post_likes with a (post_id, user_id) primary key, so the
// at-most-once invariant is enforced by the schema.
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new SQLite-backed PostRepository.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db.SqlDB}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (user_id, description, image, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		post.UserID, post.Description, post.Image, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	post.CreatedAt = now
	post.UpdatedAt = now
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, description, image, created_at, updated_at
		 FROM posts WHERE id = ?`, id,
	).Scan(&p.ID, &p.UserID, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	if err := r.loadCollections(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]domain.Post, error) {
	return r.list(ctx,
		`SELECT id, user_id, description, image, created_at, updated_at
		 FROM posts ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
}

func (r *PostRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Post, error) {
	return r.list(ctx,
		`SELECT id, user_id, description, image, created_at, updated_at
		 FROM posts WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

func (r *PostRepository) list(ctx context.Context, query string, arg any) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Description, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range posts {
		if err := r.loadCollections(ctx, &posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike flips userID's membership in the post's like set inside a
// single transaction: delete wins if the row exists, otherwise insert.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM posts WHERE id = ?", postID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("check post: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM post_likes WHERE post_id = ? AND user_id = ?", postID, userID)
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if removed == 0 {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO post_likes (post_id, user_id, created_at) VALUES (?, ?, ?)",
			postID, userID, time.Now().UTC(),
		); err != nil {
			return fmt.Errorf("add like: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostRepository) AddComment(ctx context.Context, comment *domain.Comment) error {
	var exists int64
	err := r.db.QueryRowContext(ctx, "SELECT id FROM posts WHERE id = ?", comment.PostID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("check post: %w", err)
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO post_comments (post_id, user_id, username, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.PostID, comment.UserID, comment.Username, comment.Text, now,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	comment.CreatedAt = now
	return nil
}

func (r *PostRepository) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	// Ordering by id keeps insertion order even for same-timestamp comments.
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, post_id, user_id, username, text, created_at
		 FROM post_comments WHERE post_id = ? ORDER BY id`, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *PostRepository) loadCollections(ctx context.Context, p *domain.Post) error {
	likes, err := r.loadLikes(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Likes = likes

	comments, err := r.ListComments(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Comments = comments
	return nil
}

func (r *PostRepository) loadLikes(ctx context.Context, postID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id FROM post_likes WHERE post_id = ? ORDER BY created_at, user_id", postID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer rows.Close()

	var likes []int64
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		likes = append(likes, userID)
	}
	return likes, rows.Err()
}
