package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"libraryapp/internal/config"
	"libraryapp/internal/platform/logging"
	"libraryapp/internal/store"
)

const revocationSweepInterval = 10 * time.Minute

func main() {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if err := cfg.RequireSecret(); err != nil {
		return err
	}

	openCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	st, persister, err := store.Open(openCtx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("open storage (%s): %w", cfg.Storage.Driver, err)
	}
	defer persister.Close()

	fields := []zap.Field{zap.String("driver", cfg.Storage.Driver), zap.String("key", cfg.Storage.Key)}
	if cfg.Storage.Driver == config.DriverPostgres {
		fields = append(fields, zap.String("dsn", config.RedactDSN(cfg.Storage.DSN)))
	}
	logger.Info("storage ready", fields...)

	g, ctx := errgroup.WithContext(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(ctx, cfg, st, logger),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.MutationDelay + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.MutationDelay+5*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(revocationSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if n, err := st.CleanupExpired(ctx); err == nil && n > 0 {
					logger.Debug("expired revocations removed", zap.Int("count", n))
				}
			}
		}
	})

	return g.Wait()
}
