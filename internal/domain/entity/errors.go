package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidValue indicates that a field value is outside its allowed range
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidReference indicates that an entity reference is absent or of the wrong kind
	ErrInvalidReference = errors.New("invalid reference")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidValue.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidValue
}

// TypeError reports a reference that is missing or does not point to an
// entity of the expected kind within the same registry.
type TypeError struct {
	Field string
	Want  Kind
}

// Error returns a formatted error message for the type error.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error on field '%s': must be %s", e.Field, e.Want.describe())
}

// Unwrap lets errors.Is match ErrInvalidReference.
func (e *TypeError) Unwrap() error {
	return ErrInvalidReference
}
