package user

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is an entry of the mock account registry.
type User struct {
	Fullname     string `json:"fullname" yaml:"fullname"`
	Username     string `json:"username" yaml:"username"`
	Email        string `json:"email" yaml:"email"`
	PasswordHash string `json:"password_hash" yaml:"password_hash"`
}

// Profile is the public part of a user.
type Profile struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u User) Profile() Profile {
	return Profile{Fullname: u.Fullname, Username: u.Username, Email: u.Email}
}

// Collisions holds the per-field registration conflicts. Empty fields did
// not collide.
type Collisions struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

func (c Collisions) Any() bool {
	return c.Email != "" || c.Username != ""
}

// CredentialResult is the outcome of a credential check.
type CredentialResult struct {
	Success bool
	User    *User
}

// RegistrationResult is the outcome of a registration check.
type RegistrationResult struct {
	Success bool
	Errors  Collisions
}
