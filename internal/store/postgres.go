package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresPersister keeps the document in the app_state table created by
// the migrations in db/migrations.
type PostgresPersister struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgresPersister(ctx context.Context, dsn, key string) (*PostgresPersister, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresPersister{pool: pool, key: key}, nil
}

func (p *PostgresPersister) Load(ctx context.Context) ([]byte, error) {
	var doc []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, p.key).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("postgres load: %w", err)
	}
	return doc, nil
}

func (p *PostgresPersister) Save(ctx context.Context, doc []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		p.key, string(doc))
	if err != nil {
		return fmt.Errorf("postgres save: %w", err)
	}
	return nil
}

func (p *PostgresPersister) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresPersister) Close() error {
	p.pool.Close()
	return nil
}
