package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"libraryapp/internal/config"
	"libraryapp/internal/platform/logging"
	"libraryapp/internal/store"
)

func main() {
	var (
		file     = flag.String("file", "", "YAML fixture to load instead of the built-in seed")
		generate = flag.Int("generate", 0, "Append this many generated books")
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

	st := store.Seed()
	if *file != "" {
		if st, err = loadFixture(*file); err != nil {
			logger.Fatal("load fixture", zap.String("file", *file), zap.Error(err))
		}
	}
	if *generate > 0 {
		st.Books = append(st.Books, generateBooks(st, *generate, time.Now().UnixNano())...)
		logger.Info("generated books", zap.Int("count", *generate))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := store.OpenPersister(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer p.Close()

	if err := store.New(p, logger).Reset(ctx, st); err != nil {
		logger.Fatal("write state", zap.Error(err))
	}

	logger.Info("state seeded",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("key", cfg.Storage.Key),
		zap.Int("books", len(st.Books)),
		zap.Int("categories", len(st.Categories)),
		zap.Int("users", len(st.Users)),
	)
}
