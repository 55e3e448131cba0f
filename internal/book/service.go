package book

import (
	"context"
	"slices"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"libraryapp/internal/platform/latency"
)

const pageCacheSize = 256

// pageKey identifies a computed page. The state version is part of the key
// so any commit makes older entries unreachable.
type pageKey struct {
	version    uint64
	categories string
	sort       SortKey
	direction  Direction
	pageIndex  int
	pageSize   int
}

func newPageKey(version uint64, q PageQuery) pageKey {
	ids := slices.Clone(q.Categories)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return pageKey{
		version:    version,
		categories: strings.Join(parts, ","),
		sort:       q.Sort,
		direction:  q.Direction,
		pageIndex:  q.PageIndex,
		pageSize:   q.PageSize,
	}
}

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	delay latency.Func
	pages *lru.Cache[pageKey, Page]
}

// NewService creates a new book service. delay runs before every create,
// edit and delete commits.
func NewService(repo Repository, delay latency.Func) *Service {
	if delay == nil {
		delay = latency.None
	}
	pages, _ := lru.New[pageKey, Page](pageCacheSize)
	return &Service{repo: repo, delay: delay, pages: pages}
}

// Page returns the requested page of the catalog. A page index past the
// last page is clamped before slicing.
func (s *Service) Page(ctx context.Context, q PageQuery) (Page, error) {
	version, err := s.repo.Version(ctx)
	if err != nil {
		return Page{}, err
	}
	if p, ok := s.pages.Get(newPageKey(version, q)); ok {
		return p, nil
	}

	cat, err := s.repo.Catalog(ctx)
	if err != nil {
		return Page{}, err
	}
	views := DecorateAll(cat.Books, cat.Categories)

	requested := q
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	matched := len(FilterByCategories(views, q.Categories))
	q.PageIndex = ClampPageIndex(q.PageIndex, (matched+size-1)/size)
	page := Paginate(q, views)
	s.pages.Add(newPageKey(cat.Version, requested), page)
	return page, nil
}

// Get returns a book by its id.
func (s *Service) Get(ctx context.Context, id int) (View, error) {
	cat, err := s.repo.Catalog(ctx)
	if err != nil {
		return View{}, err
	}
	for _, b := range cat.Books {
		if b.ID == id {
			return Decorate(b, cat.Categories), nil
		}
	}
	return View{}, ErrNotFound
}

// Categories returns the category registry.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	cat, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Categories, nil
}

// Featured returns the carousel books in carousel order.
func (s *Service) Featured(ctx context.Context) ([]View, error) {
	cat, err := s.repo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return DecorateAll(cat.Carousel.Featured(cat.Books), cat.Categories), nil
}

func (s *Service) IsFeatured(ctx context.Context, id int) (bool, error) {
	cat, err := s.repo.Catalog(ctx)
	if err != nil {
		return false, err
	}
	return cat.Carousel.Contains(id), nil
}

// Create stores a new book. A zero id is assigned by the repository.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	b.PublishedDate = b.PublishedDate.Normalize()
	s.delay()
	return s.repo.AddBook(context.WithoutCancel(ctx), b)
}

// Update replaces the book with the same id. The repository leaves the
// collection untouched when no book matches; that case is reported as
// ErrNotFound.
func (s *Service) Update(ctx context.Context, b Book) error {
	b.PublishedDate = b.PublishedDate.Normalize()
	s.delay()
	found, err := s.repo.EditBook(context.WithoutCancel(ctx), b)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Delete removes the book and its carousel membership. Deleting an unknown
// id is a no-op.
func (s *Service) Delete(ctx context.Context, id int) error {
	s.delay()
	return s.repo.RemoveBook(context.WithoutCancel(ctx), id)
}

func (s *Service) AddToCarousel(ctx context.Context, id int) error {
	return s.repo.AddToCarousel(ctx, id)
}

func (s *Service) RemoveFromCarousel(ctx context.Context, id int) error {
	return s.repo.RemoveFromCarousel(ctx, id)
}
