package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"libraryapp/internal/book"
	"libraryapp/internal/store"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(store.NewMemoryPersister(), zap.NewNop())
	require.NoError(t, st.Load(context.Background()))
	return st
}

func execute(t *testing.T, st *store.Store, args ...string) (string, error) {
	t.Helper()
	open := func(context.Context) (*store.Store, func() error, error) {
		return st, func() error { return nil }, nil
	}
	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	st := newSeededStore(t)

	out, err := execute(t, st, "list", "--categories", "8", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "Atomic Habits")
	assert.Contains(t, out, "Sebuah Seni")
	assert.NotContains(t, out, "Dilan 1990")
	assert.Contains(t, out, "Page 1 of 1, 2 book(s)")

	out, err = execute(t, st, "list", "--page-size", "2", "--page", "3", "--json")
	require.NoError(t, err)
	var page book.Page
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 4, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 7, page.Items[0].ID)

	_, err = execute(t, st, "list", "--sort", "rating")
	assert.ErrorContains(t, err, "unknown sort key")
}

func TestShowCmd(t *testing.T) {
	st := newSeededStore(t)

	out, err := execute(t, st, "show", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Ubur-ubur Lembur")
	assert.Contains(t, out, "7th February 2018")
	assert.Contains(t, out, "Drama")

	_, err = execute(t, st, "show", "42")
	assert.ErrorIs(t, err, book.ErrNotFound)

	_, err = execute(t, st, "show", "abc")
	assert.ErrorContains(t, err, "invalid book id")
}

func TestCarouselCmds(t *testing.T) {
	st := newSeededStore(t)

	_, err := execute(t, st, "feature", "5")
	require.NoError(t, err)
	_, err = execute(t, st, "unfeature", "1")
	require.NoError(t, err)

	out, err := execute(t, st, "featured", "--json")
	require.NoError(t, err)
	var views []book.View
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	ids := make([]int, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{2, 3, 5}, ids)
}

func TestDeleteCmd(t *testing.T) {
	st := newSeededStore(t)

	out, err := execute(t, st, "delete", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Book 2 deleted.")

	snap := st.Snapshot()
	assert.Len(t, snap.Books, 6)
	assert.Equal(t, book.Carousel{1, 3}, snap.Carousel)
}

func TestCategoriesCmd(t *testing.T) {
	out, err := execute(t, newSeededStore(t), "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Fiksi Ilmiah")
	assert.Contains(t, out, "17")
}
