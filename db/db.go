// Package db embeds the SQL migrations of the Postgres state backend.
package db

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations inside the embedded FS.
const MigrationsDir = "migrations"
