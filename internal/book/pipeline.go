package book

import (
	"slices"
	"strings"
)

// SortKey selects the list ordering. The zero value keeps insertion order.
type SortKey string

const (
	SortNone SortKey = ""
	SortName SortKey = "name"
	SortDate SortKey = "date"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize is used when neither a page size nor a viewport width is
// known.
const DefaultPageSize = 15

// PageQuery defines filters, ordering and pagination for listing books.
type PageQuery struct {
	Categories []int
	Sort       SortKey
	Direction  Direction
	PageIndex  int
	PageSize   int
}

// Page is one bounded slice of the filtered and sorted book list.
type Page struct {
	Items      []View `json:"items"`
	PageIndex  int    `json:"page_index"`
	PageSize   int    `json:"page_size"`
	TotalItems int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

// PageSizeForWidth returns the number of books per page for a viewport
// width in pixels.
func PageSizeForWidth(width int) int {
	switch {
	case width < 768:
		return 9
	case width < 1024:
		return 12
	}
	return DefaultPageSize
}

// ClampPageIndex pulls a page index that ran past the last page back to
// totalPages, and negative indexes to zero.
func ClampPageIndex(pageIndex, totalPages int) int {
	if pageIndex > totalPages {
		pageIndex = totalPages
	}
	if pageIndex < 0 {
		pageIndex = 0
	}
	return pageIndex
}

// Paginate sorts, filters and slices books. It does not clamp the page
// index; an index past the end yields an empty page.
func Paginate(q PageQuery, books []View) Page {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	filtered := FilterByCategories(SortBooks(books, q.Sort, q.Direction), q.Categories)

	page := Page{
		Items:      []View{},
		PageIndex:  q.PageIndex,
		PageSize:   size,
		TotalItems: len(filtered),
		TotalPages: (len(filtered) + size - 1) / size,
	}
	if q.PageIndex < 0 || q.PageIndex >= page.TotalPages {
		return page
	}
	start := q.PageIndex * size
	end := min(start+size, len(filtered))
	page.Items = filtered[start:end]
	return page
}

// SortBooks returns a sorted copy of books. Without a key the insertion
// order is kept, reversed for Desc.
func SortBooks(books []View, key SortKey, dir Direction) []View {
	out := slices.Clone(books)

	var cmp func(a, b View) int
	switch key {
	case SortName:
		cmp = func(a, b View) int { return strings.Compare(a.Title, b.Title) }
	case SortDate:
		cmp = func(a, b View) int { return a.PublishedDate.Date.Compare(b.PublishedDate.Date) }
	}

	if cmp == nil {
		if dir == Desc {
			slices.Reverse(out)
		}
		return out
	}
	if dir == Desc {
		asc := cmp
		cmp = func(a, b View) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// FilterByCategories keeps books having at least one resolved category in
// ids. An empty ids keeps everything.
func FilterByCategories(books []View, ids []int) []View {
	if len(ids) == 0 {
		return books
	}
	out := make([]View, 0, len(books))
	for _, b := range books {
		for _, c := range b.Categories {
			if slices.Contains(ids, c.ID) {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
