package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Validation("points", "must be >= 0"))

	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected wrapped validation error to match ErrValidation")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("validation error must not match ErrNotFound")
	}
	if got := KindOf(err); got != KindValidation {
		t.Fatalf("KindOf = %v, want validation", got)
	}
}

func TestErrorMessageNamesField(t *testing.T) {
	err := Validation("question_id", "is required")
	if got := err.Error(); got != "question_id: is required" {
		t.Fatalf("Error() = %q", got)
	}

	inner := errors.New("disk full")
	perr := Persistence("save failed", inner)
	if !errors.Is(perr, inner) {
		t.Fatalf("persistence error should unwrap to cause")
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Fatalf("plain errors are internal")
	}
}
