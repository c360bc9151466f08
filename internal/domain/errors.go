package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was hit.
	ErrAlreadyExists = errors.New("already exists")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when client input is malformed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for one field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
