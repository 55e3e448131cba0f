package main

import (
	"os"
	"testing"

	"libraryapp/db"
)

func TestMigrationsSource_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	fsys, dir := migrationsSource()
	if fsys != nil {
		t.Fatal("expected disk migrations when MIGRATIONS_DIR is set")
	}
	if dir != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", dir)
	}
	if got := createDir(); got != "/custom/migrations" {
		t.Fatalf("expected create dir override, got %q", got)
	}
}

func TestMigrationsSource_Default(t *testing.T) {
	_ = os.Unsetenv("MIGRATIONS_DIR")

	fsys, dir := migrationsSource()
	if fsys == nil || dir != db.MigrationsDir {
		t.Fatalf("expected embedded migrations, got dir %q", dir)
	}
	if got := createDir(); got != "db/migrations" {
		t.Fatalf("expected default create dir, got %q", got)
	}
}
