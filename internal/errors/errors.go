// Package errors defines the generic error kinds shared by every module.
// Domain packages wrap these sentinels with their own messages, and the HTTP
// layer maps them to status codes without knowing the domain.
package errors

import (
	"errors"
	"fmt"
)

// Generic error kinds.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the write collides with existing data.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input failed a shape or validation check.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates there is no usable authenticated session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is authenticated but not allowed.
	ErrForbidden = errors.New("forbidden")
)

// New creates a plain error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps err in the chain.
// Returns nil when err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WithKind returns an error whose message is exactly message and which
// matches kind through Is.
func WithKind(kind error, message string) error {
	return &kindError{kind: kind, message: message}
}

type kindError struct {
	kind    error
	message string
}

func (e *kindError) Error() string { return e.message }

func (e *kindError) Unwrap() error { return e.kind }

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
