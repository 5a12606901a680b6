package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request DTOs against their struct tags.
// It implements [Validator] over a single shared validate instance,
// which caches struct metadata and is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of Go identifiers
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks value against its validation tags. When field names are
// given, only those fields are checked; otherwise the whole struct is.
//
// Returns the first failed constraint as a [*FieldError] (matching
// [ErrValidation] via errors.Is), or [ErrUnsupportedType] when value is
// not a validatable struct.
func (r *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = r.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = r.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ErrUnsupportedType
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &FieldError{Field: first.Field(), Rule: first.Tag()}
	}

	return err
}
