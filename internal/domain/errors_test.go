package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{
		Message: "data tidak valid",
		Fields:  map[string]string{"name": "wajib diisi", "email": "format salah"},
	}
	want := "validation error: data tidak valid; email: format salah; name: wajib diisi"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("login: %w", &ValidationError{Fields: map[string]string{"email": MsgRequired}})
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As failed")
	}
	if got := ve.Field("email"); got != MsgRequired {
		t.Errorf("Field(email) = %q", got)
	}
	if got := ve.Field("missing"); got != "" {
		t.Errorf("Field(missing) = %q, want empty", got)
	}
}

func TestValidationError_FieldNilSafe(t *testing.T) {
	t.Parallel()

	var ve *ValidationError
	if got := ve.Field("x"); got != "" {
		t.Errorf("nil Field() = %q", got)
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	if err := NewValidationError(nil); err != nil {
		t.Errorf("NewValidationError(nil) = %v, want nil", err)
	}
	if err := NewValidationError(map[string]string{}); err != nil {
		t.Errorf("NewValidationError(empty) = %v, want nil", err)
	}
	if err := NewValidationError(map[string]string{"a": "b"}); !errors.Is(err, ErrValidation) {
		t.Errorf("NewValidationError(fields) = %v, want ErrValidation", err)
	}
}
