package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(nil); got != "" {
		t.Errorf("KindOf(nil) = %q, want empty", got)
	}
	if got := KindOf(NotFound("order not found")); got != KindNotFound {
		t.Errorf("KindOf = %q, want %q", got, KindNotFound)
	}
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Errorf("KindOf(plain error) = %q, want %q", got, KindInternal)
	}

	wrapped := fmt.Errorf("handling request: %w", Conflict("category already registered"))
	if got := KindOf(wrapped); got != KindConflict {
		t.Errorf("KindOf(wrapped) = %q, want %q", got, KindConflict)
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(Invalid("table number must be positive")); got != "table number must be positive" {
		t.Errorf("MessageOf = %q", got)
	}
	if got := MessageOf(errors.New("pq: connection reset")); got != "internal server error" {
		t.Errorf("MessageOf(plain error) = %q, want generic message", got)
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal("failed to list orders", cause)

	if !errors.Is(err, cause) {
		t.Error("Internal did not wrap its cause")
	}
	if got := MessageOf(err); got != "failed to list orders" {
		t.Errorf("MessageOf = %q", got)
	}
}
