package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that the user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUsername indicates an insert that collided on users.username.
	// Raised by the store's UNIQUE constraint, which is the authoritative
	// uniqueness guard; application-level pre-checks only improve error messages.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail indicates an insert that collided on users.email
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrLevelNotFound indicates that the user level was not found
	ErrLevelNotFound = errors.New("user level not found")
)
