package domain

import (
	"errors"
	"fmt"
)

// Lookup errors
var (
	ErrNotFound            = errors.New("not found")
	ErrHeroNotFound        = fmt.Errorf("hero %w", ErrNotFound)
	ErrPowerNotFound       = fmt.Errorf("power %w", ErrNotFound)
	ErrHeroOrPowerNotFound = fmt.Errorf("hero or power %w", ErrNotFound)
)

// ErrBadRequest marks a request body that could not be parsed.
var ErrBadRequest = errors.New("bad request")

// ValidationError reports a field value that failed a format or range rule.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err carries a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
