package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports a missing entity. Entity is "quote" or "service".
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InvalidTransitionError reports an operation on an entity whose status is
// not the one the operation requires.
type InvalidTransitionError struct {
	Entity   string
	ID       string
	Expected string
	Actual   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s %s: expected status %s, got %s", e.Entity, e.ID, e.Expected, e.Actual)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
