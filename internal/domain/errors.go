package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUnavailable  = errors.New("unavailable")
)

// Shared validation messages. They are shown verbatim on the rendered forms.
const (
	MsgRequired = "wajib diisi"
	MsgInvalid  = "tidak valid"
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// Message carries an optional form-level message (for example the backend's
// "These credentials do not match our records.").
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	if e.Message != "" {
		parts = append([]string{e.Message}, parts...)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Field returns the message recorded for field, or "" when the field is valid.
// Safe to call on a nil receiver so templates can look up errors unconditionally.
func (e *ValidationError) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// NewValidationError builds a ValidationError from a field map, returning nil
// when the map is empty so callers can `return NewValidationError(fields)`.
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
