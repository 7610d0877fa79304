package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks network-level failures: the server could not be
	// reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks 401/403 responses on protected calls. The
	// session service drops the stored token when it sees this.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the server. Message is the
// server-provided text and is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Unwrap lets errors.Is match ErrUnauthorized for rejected-token statuses.
func (e *APIError) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return nil
}
