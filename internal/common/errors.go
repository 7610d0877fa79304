// Package common defines shared constants and sentinel errors used across
// the client and server layers of authkeeper. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Signup errors.
	ErrValidation        = errors.New("all fields are required")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Login errors. Deliberately a single value for unknown email and
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token errors.
	ErrTokenMissing   = errors.New("no token provided")
	ErrTokenMalformed = errors.New("invalid token format")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidToken   = errors.New("invalid token")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
