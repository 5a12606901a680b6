package validators

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when the value passed to Validate is
	// not a struct the validator knows how to check.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is the sentinel wrapped by every field-level failure,
	// so callers can match the whole class with errors.Is.
	ErrValidation = errors.New("validation failed")
)

// FieldError reports a single failed constraint on a named field.
type FieldError struct {
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q failed rule %q", e.Field, e.Rule)
}

// Unwrap ties every FieldError to [ErrValidation].
func (e *FieldError) Unwrap() error {
	return ErrValidation
}
