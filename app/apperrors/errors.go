// Package apperrors defines the failure kinds shared across services,
// repositories and controllers. Every failure a request can produce maps to
// exactly one of these, so the HTTP layer can translate without inspecting
// message text.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied means the principal is authenticated but not
	// entitled to the targeted mutation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidToken means the presented bearer credential could not be
	// resolved to a principal.
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingRequestContext means the principal was never attached to the
	// request. This is an integration bug, not a user error.
	ErrMissingRequestContext = errors.New("request context is missing")
)

// ValidationError is a policy-violating or structurally invalid input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation builds a ValidationError with a formatted reason.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
