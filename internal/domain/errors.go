// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or not positive.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidSortField is returned when a listing is sorted by an unknown field.
	ErrInvalidSortField = fmt.Errorf("%w: unsupported sort field", ErrValidation)

	// ErrInvalidPage is returned when page number or size are out of range.
	ErrInvalidPage = fmt.Errorf("%w: invalid page request", ErrValidation)

	// ErrForbidden is returned when an authenticated caller lacks a required role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every ValidationError as an ErrValidation so callers can map the
// whole family with a single check.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
