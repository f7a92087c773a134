package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("time_conflict")

	if !IsBusiness(err, "time_conflict") {
		t.Fatalf("expected match")
	}
	if IsBusiness(err, "capacity_exceeded") {
		t.Fatalf("codes should not cross-match")
	}
	if IsBusiness(errors.New("plain"), "time_conflict") {
		t.Fatalf("plain errors are not business errors")
	}

	// errors.As atravessa wrapping
	wrapped := fmt.Errorf("create appointment: %w", err)
	if !IsBusiness(wrapped, "time_conflict") {
		t.Fatalf("wrapped business error should match")
	}
}

func TestBusinessCode(t *testing.T) {
	if code, ok := BusinessCode(ErrBusiness("already_enrolled")); !ok || code != "already_enrolled" {
		t.Fatalf("expected already_enrolled, got %q (%v)", code, ok)
	}
	if _, ok := BusinessCode(errors.New("plain")); ok {
		t.Fatalf("plain errors have no code")
	}
}
