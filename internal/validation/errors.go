package validation

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every *Error via errors.Is.
var ErrValidation = errors.New("validation error")

// FieldError ties a message to the form field it should be rendered next to.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result holds every failing rule of a single validation pass, in a stable order.
type Result struct {
	Errors []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Field returns the message attached to field, if any.
func (r Result) Field(field string) (string, bool) {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Err returns nil for a valid result and an *Error otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &Error{Fields: r.Errors}
}

type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error {
	return ErrValidation
}
