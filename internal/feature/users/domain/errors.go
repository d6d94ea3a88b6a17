// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

// Domain errors for user operations.
// Repository implementations return these; upper layers translate them to HTTP statuses.
var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
)
