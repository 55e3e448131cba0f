package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"libraryapp/internal/config"
)

// OpenPersister returns the persister selected by cfg.Driver.
func OpenPersister(ctx context.Context, cfg config.Storage) (Persister, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewSQLitePersister(ctx, cfg.SQLitePath, cfg.Key)
	case config.DriverPostgres:
		return NewPostgresPersister(ctx, cfg.DSN, cfg.Key)
	case config.DriverRedis:
		return NewRedisPersister(cfg.RedisAddr, cfg.RedisDB, cfg.Key), nil
	case config.DriverMemory:
		return NewMemoryPersister(), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// Open opens the configured backend and loads the state from it.
func Open(ctx context.Context, cfg config.Storage, logger *zap.Logger) (*Store, Persister, error) {
	p, err := OpenPersister(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	s := New(p, logger)
	if err := s.Load(ctx); err != nil {
		p.Close()
		return nil, nil, err
	}
	return s, p, nil
}
