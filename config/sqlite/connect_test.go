package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestConnectAndMigrate(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, MemoryPath)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer db.Close()

	// Running twice must be harmless.
	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i+1, err)
		}
	}

	for _, table := range []string{"tasks", "tags", "task_tags"} {
		var name string
		err := db.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestConnectAppliesPragmas(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(ctx, filepath.Join(t.TempDir(), "tasks.db"))
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	defer db.Close()

	// Recycle the only pooled connection so the pragmas must come from the DSN.
	db.SetMaxIdleConns(0)
	db.SetMaxIdleConns(1)

	tests := []struct {
		pragma string
		want   string
	}{
		{"busy_timeout", "5000"},
		{"foreign_keys", "1"},
		{"journal_mode", "wal"},
	}
	for _, tt := range tests {
		t.Run(tt.pragma, func(t *testing.T) {
			var got string
			if err := db.QueryRowContext(ctx, "PRAGMA "+tt.pragma).Scan(&got); err != nil {
				t.Fatalf("PRAGMA %s error = %v", tt.pragma, err)
			}
			if !strings.EqualFold(got, tt.want) {
				t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
			}
		})
	}
}
