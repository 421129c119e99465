// Package auth verifies staff credentials against the user store.
// It is transport-agnostic; token minting lives in the HTTP layer.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// ErrInvalidCredentials is returned for any authentication failure.
// Unknown email and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Credentials carries a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Service authenticates staff against the user repository.
type Service struct {
	Users repository.UserRepository
}

// NewService creates an authentication service backed by the given
// user repository.
func NewService(users repository.UserRepository) *Service {
	return &Service{Users: users}
}

// Authenticate checks the credentials and returns the matching user.
// Storage errors are wrapped and returned as-is; any mismatch becomes
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (*entity.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.Users.GetByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("Authenticate: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !passwordMatches(user.Password, creds.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// passwordMatches compares the stored password with the supplied one.
// Passwords are stored verbatim; the constant-time compare avoids
// leaking the match prefix length through timing.
func passwordMatches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
