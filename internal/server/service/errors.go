package service

import (
	"errors"
	"fmt"
)

// Domain errors returned by the auth service. Handlers are the only
// place these are translated to HTTP status codes.
var (
	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already registered")

	// ErrEmailTaken indicates the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers unknown identifier and wrong password.
	// Both cases share one error so responses cannot be used to enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrAccountDisabled indicates the password was correct but the
	// account's active flag is off
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrUserNotFound indicates a lookup by id matched no user
	ErrUserNotFound = errors.New("user not found")
)

// ValidationError indicates rejected input with the field that failed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
