package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/socialdots/site/internal/db"
)

func TestUp_CreatesSchemaAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "migrate-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	for i := 0; i < 2; i++ {
		if err := Up(ctx, database); err != nil {
			t.Fatalf("Up (run %d): %v", i+1, err)
		}
	}

	for _, table := range []string{"users", "testimonials", "projects", "resources"} {
		var name string
		err := database.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s: %v", table, err)
		}
	}

	var version int64
	if err := database.QueryRowContext(ctx, `SELECT MAX(version_id) FROM goose_db_version`).Scan(&version); err != nil {
		t.Fatalf("read goose version: %v", err)
	}
	if version != 2 {
		t.Fatalf("goose version = %d, want 2", version)
	}
}

func TestUp_SchemaChecksRating(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "migrate-test.db"))
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	if err := Up(ctx, database); err != nil {
		t.Fatalf("Up: %v", err)
	}

	_, err = database.ExecContext(ctx, `INSERT INTO testimonials (id, client_name, quote, rating) VALUES ('t1', 'x', 'y', 6)`)
	if err == nil {
		t.Fatalf("expected CHECK constraint to reject rating 6")
	}
}
