package theme

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Current(ctx context.Context) (Theme, error) {
	t, err := s.repo.Theme(ctx)
	if err != nil {
		return "", err
	}
	if t == "" {
		return Default, nil
	}
	return t, nil
}

func (s *Service) Set(ctx context.Context, t Theme) error {
	if _, err := Parse(string(t)); err != nil {
		return err
	}
	return s.repo.SetTheme(ctx, t)
}

func (s *Service) Toggle(ctx context.Context) (Theme, error) {
	return s.repo.ToggleTheme(ctx)
}
