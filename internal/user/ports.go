package user

//go:generate mockgen -source=ports.go -destination=mocks_test.go -package=user

import (
	"context"
)

// Registry defines the contract for the account registry storage.
type Registry interface {
	Users(ctx context.Context) ([]User, error)
	// RegisterUser checks collisions and appends u in one step. Nothing is
	// stored when the result is not successful.
	RegisterUser(ctx context.Context, u User) (RegistrationResult, error)
}
