package domain

import (
	"errors"
	"testing"
)

func TestValidationError_FirstMessagePerFieldWins(t *testing.T) {
	ve := NewValidationError("name", "name is required")
	ve.Add("name", "name must be at least 2 characters")
	ve.Add("email", "email must be a valid email address")

	if ve.Fields["name"] != "name is required" {
		t.Fatalf("expected first message kept, got %q", ve.Fields["name"])
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected two field entries, got %v", ve.Fields)
	}
}

func TestValidationError_AddOnZeroValue(t *testing.T) {
	var ve ValidationError
	ve.Add(ValidationRootField, "invalid request body")

	if ve.Fields[ValidationRootField] != "invalid request body" {
		t.Fatalf("expected root entry, got %v", ve.Fields)
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidCredentials, ErrUserNotFound, ErrEmailExists}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %d and %d should not match", i, j)
			}
		}
	}
}
