package auth

import (
	"context"
	"errors"
	"time"

	"libraryapp/internal/platform/crypto"
	"libraryapp/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

// Revoker records logged-out token ids until they expire.
type Revoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
}

// Session is returned by a successful login.
type Session struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"`
	User        user.Profile `json:"user"`
}

type Service struct {
	secret      string
	ttl         time.Duration
	userService *user.Service
	revoker     Revoker
}

func NewService(secret string, ttl time.Duration, userService *user.Service, revoker Revoker) *Service {
	return &Service{
		secret:      secret,
		ttl:         ttl,
		userService: userService,
		revoker:     revoker,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	u, err := s.userService.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return Session{}, ErrUnauthorized
		}
		return Session{}, err
	}

	accessToken, _, err := crypto.GenerateToken(s.secret, u.Username, s.ttl)
	if err != nil {
		return Session{}, err
	}

	return Session{
		AccessToken: accessToken,
		ExpiresIn:   int(s.ttl.Seconds()),
		User:        u.Profile(),
	}, nil
}

// Logout revokes token until its natural expiry.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := crypto.ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}
	expiresAt := time.Now().Add(s.ttl)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.revoker.Revoke(ctx, claims.ID, expiresAt)
}
