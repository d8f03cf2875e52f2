package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/blog-api/internal/domain"
)

// Service-level sentinel errors. The API layer maps them to status codes.
var (
	// ErrCommentNotInPost is returned when a comment is addressed through a post it does not belong to.
	// It is a validation failure, so it maps to HTTP 400.
	ErrCommentNotInPost = fmt.Errorf("%w: comment does not belong to post", domain.ErrValidation)
)

// ServiceError wraps an unexpected failure with the operation that produced it.
type ServiceError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the wrapped error.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError wraps err as a ServiceError unless it already is one.
func wrapError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return err
	}
	return &ServiceError{Operation: operation, Err: err}
}
