package user

import (
	"context"
	"fmt"

	"libraryapp/internal/platform/crypto"
	"libraryapp/internal/platform/latency"
)

// Registration is a sign-up request.
type Registration struct {
	Fullname string
	Username string
	Email    string
	Password string
}

type Service struct {
	registry Registry
	delay    latency.Func
}

func NewService(registry Registry, delay latency.Func) *Service {
	if delay == nil {
		delay = latency.None
	}
	return &Service{registry: registry, delay: delay}
}

// Register creates an account. When the email or username is taken the
// returned result carries every collision and the error is ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, reg Registration) (User, RegistrationResult, error) {
	hash, err := crypto.HashPassword(reg.Password)
	if err != nil {
		return User{}, RegistrationResult{}, fmt.Errorf("hash password: %w", err)
	}
	u := User{
		Fullname:     reg.Fullname,
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
	}

	s.delay()
	res, err := s.registry.RegisterUser(context.WithoutCancel(ctx), u)
	if err != nil {
		return User{}, RegistrationResult{}, err
	}
	if !res.Success {
		return User{}, res, ErrAlreadyExists
	}
	return u, res, nil
}

// Authenticate checks the credentials after the simulated delay.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	s.delay()
	users, err := s.registry.Users(ctx)
	if err != nil {
		return User{}, err
	}
	res := CheckCredentials(email, password, users)
	if !res.Success {
		return User{}, ErrInvalidCredentials
	}
	return *res.User, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	users, err := s.registry.Users(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
