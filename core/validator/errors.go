package validator

import (
	"errors"
	"strings"
)

// ErrNotStructPointer is returned for anything but a non-nil struct pointer.
var ErrNotStructPointer = errors.New("validator: must pass a pointer to struct")

// ValidationError describes one failed rule.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects failures in field order.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Add appends a failure.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether any failure concerns field.
func (e ValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// NewFieldError builds a single-failure ValidationErrors for checks that
// happen outside tags, such as uniqueness against the database.
func NewFieldError(field, message, translationKey string) ValidationErrors {
	return ValidationErrors{{
		Field:             field,
		Message:           message,
		TranslationKey:    translationKey,
		TranslationValues: map[string]any{"field": field},
	}}
}
