package models

import (
	"errors"
	"strings"
)

// Common errors used throughout the application
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInsufficientStock  = errors.New("item is out of stock or insufficient quantity available")
	ErrCartConflict       = errors.New("cart was modified concurrently")
	ErrInvalidID          = errors.New("invalid item ID format")
)

// ValidationErrors collects per-field validation messages so a single
// response can report every invalid field, not just the first one.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return strings.Join(v, "; ")
}

// Add appends a message and returns the updated list.
func (v ValidationErrors) Add(message string) ValidationErrors {
	return append(v, message)
}

// OrNil returns nil when no messages were collected, so callers can do
// `return errs.OrNil()` at the end of a validation pass.
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidationErrors extracts a ValidationErrors list from err, if present.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
