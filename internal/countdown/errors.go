package countdown

import (
	"errors"
	"fmt"
)

// Validation errors returned when building or loading events.
var (
	ErrNameRequired = errors.New("event name is required")
	ErrDateRequired = errors.New("event date is required")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime  = errors.New("time must be HH:MM")
	ErrInvalidIcon  = errors.New("icon is not in the palette")
	ErrMissingID    = errors.New("event has no positive id")
)

// FieldError wraps a validation failure with the offending field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err was produced by draft or event validation.
func IsValidationError(err error) bool {
	var fe *FieldError
	if errors.As(err, &fe) {
		return true
	}
	for _, target := range []error{ErrNameRequired, ErrDateRequired, ErrInvalidDate, ErrInvalidTime, ErrInvalidIcon, ErrMissingID} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
