package store

import (
	"context"
	"time"
)

// Revoke blacklists a token id until expiresAt. Revocations live only in
// process memory; a restart forgets them.
func (s *Store) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	s.revokedMu.Lock()
	defer s.revokedMu.Unlock()
	s.revoked[jti] = expiresAt
	return nil
}

// IsRevoked reports whether jti was revoked and has not yet expired.
func (s *Store) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.revokedMu.Lock()
	defer s.revokedMu.Unlock()
	exp, ok := s.revoked[jti]
	if !ok {
		return false, nil
	}
	if !s.now().Before(exp) {
		delete(s.revoked, jti)
		return false, nil
	}
	return true, nil
}

// CleanupExpired drops revocations whose token already expired and returns
// how many were removed.
func (s *Store) CleanupExpired(_ context.Context) (int, error) {
	s.revokedMu.Lock()
	defer s.revokedMu.Unlock()
	now := s.now()
	n := 0
	for jti, exp := range s.revoked {
		if !now.Before(exp) {
			delete(s.revoked, jti)
			n++
		}
	}
	return n, nil
}
