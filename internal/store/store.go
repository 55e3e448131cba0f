// Package store holds the application state document in memory and mirrors
// every committed change to a Persister.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"libraryapp/internal/book"
	"libraryapp/internal/theme"
	"libraryapp/internal/user"
)

// Store is the single state container. Reads see a consistent snapshot and
// writes are serialized. A write that fails to persist leaves the in-memory
// state untouched.
type Store struct {
	mu        sync.RWMutex
	state     State
	version   uint64
	persister Persister
	logger    *zap.Logger

	revokedMu sync.Mutex
	revoked   map[string]time.Time
	now       func() time.Time
}

func New(p Persister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:     Seed(),
		persister: p,
		logger:    logger,
		revoked:   make(map[string]time.Time),
		now:       time.Now,
	}
}

// Load rehydrates the state from the persister. When nothing was stored yet
// the seed state is written.
func (s *Store) Load(ctx context.Context) error {
	doc, err := s.persister.Load(ctx)
	if errors.Is(err, ErrNoState) {
		s.logger.Info("no persisted state, writing seed")
		return s.Reset(ctx, Seed())
	}
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	st, err := Decode(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.state = st
	s.version++
	s.mu.Unlock()

	s.logger.Info("state loaded",
		zap.Int("books", len(st.Books)),
		zap.Int("users", len(st.Users)),
	)
	return nil
}

// Reset replaces the whole state.
func (s *Store) Reset(ctx context.Context, st State) error {
	return s.commit(ctx, func(State) (State, error) {
		return st.Normalize().Clone(), nil
	})
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.persister.Ping(ctx)
}

// commit applies fn to a copy of the state, persists the result and only
// then publishes it.
func (s *Store) commit(ctx context.Context, fn func(State) (State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state.Clone())
	if err != nil {
		return err
	}
	doc, err := Encode(next)
	if err != nil {
		return err
	}
	if err := s.persister.Save(ctx, doc); err != nil {
		s.logger.Error("persist state", zap.Error(err))
		return fmt.Errorf("persist state: %w", err)
	}
	s.state = next
	s.version++
	s.logger.Debug("state committed", zap.Uint64("version", s.version), zap.Int("bytes", len(doc)))
	return nil
}

func (s *Store) Version(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version, nil
}

func (s *Store) Catalog(_ context.Context) (book.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state.Clone()
	return book.Catalog{
		Books:      st.Books,
		Categories: st.Categories,
		Carousel:   st.Carousel,
		Version:    s.version,
	}, nil
}

// AddBook appends b. A zero id is replaced with one past the largest id in
// the collection; any other id is kept as given.
func (s *Store) AddBook(ctx context.Context, b book.Book) (book.Book, error) {
	var added book.Book
	err := s.commit(ctx, func(st State) (State, error) {
		added = b.Clone()
		if added.CategoryIDs == nil {
			added.CategoryIDs = []int{}
		}
		added.PublishedDate = added.PublishedDate.Normalize()
		if added.ID == 0 {
			added.ID = nextBookID(st.Books)
		}
		st.Books = append(st.Books, added)
		return st, nil
	})
	if err != nil {
		return book.Book{}, err
	}
	return added.Clone(), nil
}

func nextBookID(books []book.Book) int {
	maxID := 0
	for _, b := range books {
		maxID = max(maxID, b.ID)
	}
	return maxID + 1
}

// EditBook replaces every book with b's id. It reports false, and changes
// nothing, when no book has that id.
func (s *Store) EditBook(ctx context.Context, b book.Book) (bool, error) {
	edited := b.Clone()
	if edited.CategoryIDs == nil {
		edited.CategoryIDs = []int{}
	}
	edited.PublishedDate = edited.PublishedDate.Normalize()

	found := false
	err := s.commit(ctx, func(st State) (State, error) {
		for i := range st.Books {
			if st.Books[i].ID == b.ID {
				st.Books[i] = edited.Clone()
				found = true
			}
		}
		if !found {
			return st, errNoChange
		}
		return st, nil
	})
	if errors.Is(err, errNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return found, nil
}

// errNoChange aborts a commit without error for the caller.
var errNoChange = errors.New("no change")

// RemoveBook deletes every book with id and drops it from the carousel.
// Removing an unknown id succeeds.
func (s *Store) RemoveBook(ctx context.Context, id int) error {
	err := s.commit(ctx, func(st State) (State, error) {
		books := st.Books[:0]
		for _, b := range st.Books {
			if b.ID != id {
				books = append(books, b)
			}
		}
		if len(books) == len(st.Books) && !st.Carousel.Contains(id) {
			return st, errNoChange
		}
		st.Books = books
		st.Carousel = st.Carousel.Remove(id)
		return st, nil
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}

// AddToCarousel appends id to the featured list. The id is not checked
// against the books.
func (s *Store) AddToCarousel(ctx context.Context, id int) error {
	return s.commit(ctx, func(st State) (State, error) {
		st.Carousel = st.Carousel.Add(id)
		return st, nil
	})
}

func (s *Store) RemoveFromCarousel(ctx context.Context, id int) error {
	err := s.commit(ctx, func(st State) (State, error) {
		if !st.Carousel.Contains(id) {
			return st, errNoChange
		}
		st.Carousel = st.Carousel.Remove(id)
		return st, nil
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	return err
}

func (s *Store) Users(_ context.Context) ([]user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.Users), nil
}

// RegisterUser checks collisions and appends u under the same lock.
func (s *Store) RegisterUser(ctx context.Context, u user.User) (user.RegistrationResult, error) {
	var res user.RegistrationResult
	err := s.commit(ctx, func(st State) (State, error) {
		res = user.CheckRegistration(u.Email, u.Username, st.Users)
		if !res.Success {
			return st, errNoChange
		}
		st.Users = append(st.Users, u)
		return st, nil
	})
	if err != nil && !errors.Is(err, errNoChange) {
		return user.RegistrationResult{}, err
	}
	return res, nil
}

func (s *Store) Theme(_ context.Context) (theme.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Theme, nil
}

func (s *Store) SetTheme(ctx context.Context, t theme.Theme) error {
	return s.commit(ctx, func(st State) (State, error) {
		st.Theme = t
		return st, nil
	})
}

func (s *Store) ToggleTheme(ctx context.Context) (theme.Theme, error) {
	var t theme.Theme
	err := s.commit(ctx, func(st State) (State, error) {
		st.Theme = st.Theme.Toggle()
		t = st.Theme
		return st, nil
	})
	return t, err
}
