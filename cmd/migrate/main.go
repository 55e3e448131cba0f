package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"libraryapp/internal/config"
	"libraryapp/internal/platform/logging"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *command == "create" {
		if *name == "" {
			logger.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, createDir(), *name, "sql"); err != nil {
			logger.Fatal("create migration", zap.Error(err))
		}
		logger.Info("migration created", zap.String("name", *name))
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
	if err != nil {
		logger.Fatal("connect to database", zap.String("dsn", config.RedactDSN(cfg.Storage.DSN)), zap.Error(err))
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	baseFS, dir := migrationsSource()
	goose.SetBaseFS(baseFS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Fatal("set dialect", zap.Error(err))
	}

	switch *command {
	case "up":
		if err := goose.Up(sqlDB, dir); err != nil {
			logger.Fatal("run migrations", zap.Error(err))
		}
		logger.Info("migrations applied")
	case "down":
		if err := goose.Down(sqlDB, dir); err != nil {
			logger.Fatal("roll back migrations", zap.Error(err))
		}
		logger.Info("migrations rolled back")
	case "status":
		if err := goose.Status(sqlDB, dir); err != nil {
			logger.Fatal("migration status", zap.Error(err))
		}
	default:
		logger.Fatal("unknown command, use: up, down, status, create", zap.String("command", *command))
	}
}
