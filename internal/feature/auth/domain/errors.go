// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled
// appropriately by upper layers.
var (
	// ErrUsernameTaken indicates that a user with the given username
	// already exists. This is returned during signup on a registration
	// collision.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound indicates that no user was found with the given
	// criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the provided credentials are
	// incorrect. This is returned during login when username or password
	// is invalid.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
