package domain

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every ValidationError so callers can test with errors.Is.
var ErrInvalid = errors.New("invalid input")

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
