package main

import (
	"io/fs"
	"os"

	"libraryapp/db"
)

// migrationsSource returns where goose reads migrations from. MIGRATIONS_DIR
// points at a directory on disk; otherwise the embedded set is used.
func migrationsSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return db.Migrations, db.MigrationsDir
}

// createDir is where new migration files are written.
func createDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
