package slot

import (
	"testing"

	"github.com/marcafacil/booking-api/internal/httperr"
)

func TestCanEnroll(t *testing.T) {
	if err := CanEnroll(0, 10); err != nil {
		t.Fatalf("empty slot should accept: %v", err)
	}
	if err := CanEnroll(9, 10); err != nil {
		t.Fatalf("one seat left should accept: %v", err)
	}

	// Com N inscrições ativas num slot de capacidade N, recusa.
	err := CanEnroll(10, 10)
	if err == nil {
		t.Fatalf("full slot should reject")
	}
	if !httperr.IsBusiness(err, "capacity_exceeded") {
		t.Fatalf("expected capacity_exceeded, got %v", err)
	}

	if err := CanEnroll(11, 10); err == nil {
		t.Fatalf("over-full slot should reject")
	}
}

func TestCanEnroll_UnlimitedCapacity(t *testing.T) {
	if err := CanEnroll(500, 0); err != nil {
		t.Fatalf("capacity zero means unlimited: %v", err)
	}
}

func TestActive(t *testing.T) {
	if Active(EnrollmentCancelled) {
		t.Fatalf("cancelled enrollment should not count")
	}
	if !Active(EnrollmentConfirmed) || !Active(EnrollmentPending) {
		t.Fatalf("confirmed and pending enrollments should count")
	}
}

func TestCheckEligibility(t *testing.T) {
	if err := CheckEligibility(true); err != nil {
		t.Fatalf("eligible client should pass: %v", err)
	}

	err := CheckEligibility(false)
	if !httperr.IsBusiness(err, "client_not_eligible") {
		t.Fatalf("expected client_not_eligible, got %v", err)
	}
}
