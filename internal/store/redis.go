package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPersister keeps the document as a plain string value without expiry.
type RedisPersister struct {
	client *redis.Client
	key    string
}

func NewRedisPersister(addr string, db int, key string) *RedisPersister {
	return &RedisPersister{
		client: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		key:    key,
	}
}

func (p *RedisPersister) Load(ctx context.Context) ([]byte, error) {
	doc, err := p.client.Get(ctx, p.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("redis load: %w", err)
	}
	return doc, nil
}

func (p *RedisPersister) Save(ctx context.Context, doc []byte) error {
	if err := p.client.Set(ctx, p.key, doc, 0).Err(); err != nil {
		return fmt.Errorf("redis save: %w", err)
	}
	return nil
}

func (p *RedisPersister) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *RedisPersister) Close() error {
	return p.client.Close()
}
