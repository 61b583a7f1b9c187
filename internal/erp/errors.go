package erp

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote answers 404 for a specific
// resource. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// AuthError is a credential failure. Message is what the UI shows;
// RemoteMessage keeps the server's wording for the logs.
type AuthError struct {
	Message       string
	RemoteMessage string
}

func (e *AuthError) Error() string { return e.Message }

// APIError is any non-2xx answer (or transport failure, Status 0) from
// the ERP. Message is the server's "message" field when the body had one.
type APIError struct {
	Op      string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: request failed", e.Op)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// Unwrap maps 404 onto ErrNotFound so errors.Is works across the
// package boundary.
func (e *APIError) Unwrap() error {
	if e.Status == 404 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err is, or wraps, a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
