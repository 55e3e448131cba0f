package store

import (
	"encoding/json"
	"fmt"
	"slices"

	"libraryapp/internal/book"
	"libraryapp/internal/theme"
	"libraryapp/internal/user"
)

// State is the whole application document. It is persisted as a single JSON
// value and replaced whole on every commit.
type State struct {
	Books      []book.Book     `json:"books" yaml:"books"`
	Categories []book.Category `json:"categories" yaml:"categories"`
	Carousel   book.Carousel   `json:"carousel" yaml:"carousel"`
	Users      []user.User     `json:"users" yaml:"users"`
	Theme      theme.Theme     `json:"theme" yaml:"theme"`
}

// Seed returns the initial application state.
func Seed() State {
	return State{
		Books:      book.SeedBooks(),
		Categories: book.SeedCategories(),
		Carousel:   book.SeedCarousel(),
		Users:      []user.User{},
		Theme:      theme.Default,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{
		Books:      make([]book.Book, len(s.Books)),
		Categories: slices.Clone(s.Categories),
		Carousel:   slices.Clone(s.Carousel),
		Users:      slices.Clone(s.Users),
		Theme:      s.Theme,
	}
	for i, b := range s.Books {
		out.Books[i] = b.Clone()
	}
	return out
}

// Normalize fills nil collections and normalizes published dates, so a
// decoded document compares equal to the state it was encoded from.
func (s State) Normalize() State {
	if s.Books == nil {
		s.Books = []book.Book{}
	}
	if s.Categories == nil {
		s.Categories = []book.Category{}
	}
	if s.Carousel == nil {
		s.Carousel = book.Carousel{}
	}
	if s.Users == nil {
		s.Users = []user.User{}
	}
	if s.Theme == "" {
		s.Theme = theme.Default
	}
	for i := range s.Books {
		if s.Books[i].CategoryIDs == nil {
			s.Books[i].CategoryIDs = []int{}
		}
		s.Books[i].PublishedDate = s.Books[i].PublishedDate.Normalize()
	}
	return s
}

// Encode serializes the state document.
func Encode(s State) ([]byte, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return doc, nil
}

// Decode parses a state document and rejects unknown date precisions.
func Decode(doc []byte) (State, error) {
	var s State
	if err := json.Unmarshal(doc, &s); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	for _, b := range s.Books {
		if !b.PublishedDate.Precision.Valid() {
			return State{}, fmt.Errorf("decode state: book %d has unknown date precision %q", b.ID, b.PublishedDate.Precision)
		}
	}
	return s.Normalize(), nil
}
