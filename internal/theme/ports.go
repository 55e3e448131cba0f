package theme

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=theme

import "context"

type Repository interface {
	Theme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error
	ToggleTheme(ctx context.Context) (Theme, error)
}
