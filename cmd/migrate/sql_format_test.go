package main

import (
	"io/fs"
	"path"
	"strings"
	"testing"

	"libraryapp/db"
)

// The state backend reads and upserts app_state(key, value, updated_at),
// so some migration has to create that table with those columns.
func TestSQLMigrations_DefineAppState(t *testing.T) {
	names, err := fs.Glob(db.Migrations, path.Join(db.MigrationsDir, "*.sql"))
	if err != nil {
		t.Fatalf("glob embedded migrations: %v", err)
	}

	var createsAppState bool
	for _, name := range names {
		b, err := fs.ReadFile(db.Migrations, name)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		s := string(b)
		up, down, ok := strings.Cut(s, "-- +goose Down")
		if !ok || !strings.Contains(up, "-- +goose Up") {
			t.Fatalf("%s needs an Up section followed by a Down section", name)
		}
		if !strings.Contains(up, "CREATE TABLE IF NOT EXISTS app_state") {
			continue
		}
		createsAppState = true
		for _, col := range []string{"key TEXT PRIMARY KEY", "value JSONB", "updated_at TIMESTAMPTZ"} {
			if !strings.Contains(up, col) {
				t.Errorf("%s: app_state is missing column %q", name, col)
			}
		}
		if !strings.Contains(down, "DROP TABLE IF EXISTS app_state") {
			t.Errorf("%s: Down section does not drop app_state", name)
		}
	}
	if !createsAppState {
		t.Fatal("no migration creates app_state")
	}
}
