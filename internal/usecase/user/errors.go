// Package user provides use cases for managing staff accounts.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is invalid.
	// User IDs must be positive integers.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrEmailTaken indicates that another account already uses the email.
	ErrEmailTaken = errors.New("email already in use")
)
