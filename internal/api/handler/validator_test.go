package handler

import (
	"errors"
	"testing"

	"github.com/tradeco/board/internal/core/domain"
)

func TestValidator_UsesFormFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&updateProfileForm{DateOfBirth: "31/12/1999"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if got := inputMessage(err); got != "Date of birth must be a date like 2006-01-02" {
		t.Fatalf("unexpected message %q", got)
	}

	if err := v.Validate(&updateProfileForm{DateOfBirth: "1999-12-31", Email: "x@example.com"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestValidator_RegisterForm(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerForm{Email: "cara@example.com", Rate: -1, Password: "pw"})
	if got := inputMessage(err); got != "Rate must be at least 0" {
		t.Fatalf("unexpected message %q", got)
	}
}
