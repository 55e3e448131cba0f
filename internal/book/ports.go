package book

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=book

import (
	"context"
)

// Repository defines the contract for the catalog state container.
type Repository interface {
	Version(ctx context.Context) (uint64, error)
	Catalog(ctx context.Context) (Catalog, error)
	AddBook(ctx context.Context, b Book) (Book, error)
	EditBook(ctx context.Context, b Book) (bool, error)
	RemoveBook(ctx context.Context, id int) error
	AddToCarousel(ctx context.Context, id int) error
	RemoveFromCarousel(ctx context.Context, id int) error
}
