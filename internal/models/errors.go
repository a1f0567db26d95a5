// ABOUTME: ValidationError for invalid input to mutating operations.
// ABOUTME: Surfaced synchronously; the operation has no effect.
package models

import "fmt"

// ValidationError rejects invalid input to a mutating operation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
