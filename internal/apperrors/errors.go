// Package apperrors defines the sentinel errors shared across layers.
// Handlers map them to HTTP status codes; everything else is treated as
// an internal error.
package apperrors

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable so the API never
	// leaks whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken   = errors.New("email already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
)
