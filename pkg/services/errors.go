// Package services implements the application services over the session
// store: session lifecycle, report persistence, the research scratchpad,
// and user accounts.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity does not exist or is not
	// visible to the requesting user.
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrConflict is returned when an operation is not legal for the
	// entity's current state, such as cancelling a completed session.
	ErrConflict = errors.New("operation conflicts with current state")

	// ErrForbidden is returned when the requesting user may not access
	// the entity.
	ErrForbidden = errors.New("access denied")

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. Deliberately indistinguishable between the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError wraps field-specific validation errors.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
