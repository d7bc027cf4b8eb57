package domain

import (
	"errors"
	"fmt"
)

// The demo surfaced every failure as the same blocking dialog. The
// domain layer distinguishes them so callers can map each to the right
// recovery path; all are recoverable, none is fatal.
var (
	// ErrNotFound is returned on any lookup miss: unknown QR code,
	// unknown transaction id, expired session token.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when the email or password does
	// not exactly match a known account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrItemUnavailable rejects a borrow against an item that is not
	// available or already has an open transaction.
	ErrItemUnavailable = errors.New("item is not available for borrowing")
)

// ValidationError reports a missing or invalid required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// MissingField builds a ValidationError for an empty required field.
func MissingField(name string) error {
	return &ValidationError{Field: name}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
