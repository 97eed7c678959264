package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/colefield/ripple/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew_EnablesForeignKeys(t *testing.T) {
	db := newTestDB(t)

	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("query foreign_keys pragma: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatal("expected foreign keys to be enabled")
	}
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, table := range []string{"users", "posts", "post_likes", "post_comments", "file_blobs"} {
		var name string
		err := db.SqlDB.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Running migrations again must be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count == 0 {
		t.Fatal("expected at least one recorded migration")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := db.FileStore()
	ctx := context.Background()

	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	if err := store.Save(ctx, "photo.jpg", data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "photo.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("expected %v, got %v", data, got)
	}

	if err := store.Delete(ctx, "photo.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "photo.jpg"); err == nil {
		t.Fatal("expected error after delete")
	}
}
