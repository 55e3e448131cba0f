package store

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrNoState is returned by Persister.Load when nothing was saved yet.
var ErrNoState = errors.New("no persisted state")

// Persister stores the state document under one key.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, doc []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// MemoryPersister keeps the document in process memory.
type MemoryPersister struct {
	mu  sync.Mutex
	doc []byte
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Load(_ context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doc == nil {
		return nil, ErrNoState
	}
	return slices.Clone(p.doc), nil
}

func (p *MemoryPersister) Save(_ context.Context, doc []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.doc = slices.Clone(doc)
	return nil
}

func (p *MemoryPersister) Ping(context.Context) error { return nil }

func (p *MemoryPersister) Close() error { return nil }
