package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyName is returned when a user's name is empty or too short.
	ErrEmptyName = errors.New("name must be between 2 and 50 characters")

	// ErrEmptyEmail is returned when a user's email is empty.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidAge is returned when a user's age is outside the allowed range.
	ErrInvalidAge = errors.New("age must be between 1 and 119")

	// ErrEmptyItem is returned when an order's item description is missing.
	ErrEmptyItem = errors.New("item must be between 1 and 100 characters")

	// ErrInvalidQuantity is returned when an order's quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrInvalidTotal is returned when an order's total is not positive.
	ErrInvalidTotal = errors.New("total must be greater than zero")

	// ErrInvalidUserRef is returned when an order references a user id
	// that is not a positive integer.
	ErrInvalidUserRef = errors.New("user id must be greater than zero")
)

// ValidationError describes a validation failure scoped to a single field.
// The API layer surfaces these to clients with the offending field name.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation, so callers can use
// errors.Is(err, ErrValidation) without knowing the concrete type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
