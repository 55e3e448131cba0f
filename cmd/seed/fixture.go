package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"libraryapp/internal/book"
	"libraryapp/internal/platform/crypto"
	"libraryapp/internal/store"
	"libraryapp/internal/theme"
	"libraryapp/internal/user"
)

// fixture is the YAML seed layout. Users carry plain passwords which are
// hashed on load.
type fixture struct {
	Books      []book.Book     `yaml:"books"`
	Categories []book.Category `yaml:"categories"`
	Carousel   []int           `yaml:"carousel"`
	Theme      string          `yaml:"theme"`
	Users      []struct {
		Fullname string `yaml:"fullname"`
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"users"`
}

// loadFixture reads a YAML fixture. Sections left out fall back to the
// built-in seed.
func loadFixture(path string) (store.State, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return store.State{}, err
	}
	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return store.State{}, fmt.Errorf("parse %s: %w", path, err)
	}

	st := store.Seed()
	if f.Books != nil {
		st.Books = f.Books
	}
	if f.Categories != nil {
		st.Categories = f.Categories
	}
	if f.Carousel != nil {
		st.Carousel = book.Carousel(f.Carousel)
	}
	if f.Theme != "" {
		t, err := theme.Parse(f.Theme)
		if err != nil {
			return store.State{}, fmt.Errorf("theme %q: %w", f.Theme, err)
		}
		st.Theme = t
	}
	for i, b := range st.Books {
		if !b.PublishedDate.Precision.Valid() {
			return store.State{}, fmt.Errorf("book %d: unknown date precision %q", b.ID, b.PublishedDate.Precision)
		}
		if b.ID == 0 {
			st.Books[i].ID = i + 1
		}
	}
	for _, u := range f.Users {
		hash, err := crypto.HashPassword(u.Password)
		if err != nil {
			return store.State{}, fmt.Errorf("hash password for %s: %w", u.Username, err)
		}
		st.Users = append(st.Users, user.User{
			Fullname:     u.Fullname,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hash,
		})
	}
	return st.Normalize(), nil
}

var words = []string{"Senja", "Hujan", "Bulan", "Laut", "Rindu", "Pelangi", "Langit", "Bintang", "Angin", "Gunung"}

// generateBooks returns n synthetic books numbered after the largest id in
// st, with categories drawn from its registry.
func generateBooks(st store.State, n int, seed int64) []book.Book {
	rng := rand.New(rand.NewSource(seed))
	next := 0
	for _, b := range st.Books {
		next = max(next, b.ID)
	}

	out := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		next++
		var cats []int
		if len(st.Categories) > 0 {
			cats = []int{st.Categories[rng.Intn(len(st.Categories))].ID}
		}
		published := time.Date(1950+rng.Intn(75), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		out = append(out, book.Book{
			ID:            next,
			Title:         fmt.Sprintf("%s %s %d", words[rng.Intn(len(words))], words[rng.Intn(len(words))], next),
			Author:        fmt.Sprintf("Penulis %d", rng.Intn(500)),
			Description:   "Generated book used for pagination and sorting checks.",
			ImageURL:      fmt.Sprintf("https://picsum.photos/seed/%d/300/450", next),
			CategoryIDs:   cats,
			PublishedDate: book.NewPublishedDate(book.Precisions[rng.Intn(len(book.Precisions))], published),
		})
	}
	return out
}
