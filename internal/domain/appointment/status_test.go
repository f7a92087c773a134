package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

func TestValidateStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if err := ValidateStatus(s); err != nil {
			t.Fatalf("status %s should be valid: %v", s, err)
		}
	}

	err := ValidateStatus(Status("REJECTED"))
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}
}

func TestCountsAgainstSchedule(t *testing.T) {
	if CountsAgainstSchedule(StatusCancelled) {
		t.Fatalf("cancelled should not count against the schedule")
	}
	for _, s := range []Status{StatusPending, StatusAccepted, StatusConfirmed, StatusCompleted} {
		if !CountsAgainstSchedule(s) {
			t.Fatalf("status %s should count against the schedule", s)
		}
	}
}

func TestApplyStatus_AnyToAny(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	// Sem tabela de transições: COMPLETED volta a PENDING sem erro.
	ap := &models.Appointment{Status: string(StatusCompleted)}
	if err := ApplyStatus(ap, StatusPending, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusPending) {
		t.Fatalf("expected PENDING, got %s", ap.Status)
	}
}

func TestApplyStatus_Timestamps(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := ApplyStatus(ap, StatusCancelled, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Fatalf("expected CancelledAt to be set")
	}

	ap = &models.Appointment{Status: string(StatusConfirmed)}
	if err := ApplyStatus(ap, StatusCompleted, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt to be set")
	}
}

func TestApplyStatus_AppendsLog(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending), Notes: "cliente prefere manhãs"}
	if err := ApplyStatus(ap, StatusConfirmed, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(ap.Notes, "cliente prefere manhãs\n") {
		t.Fatalf("existing notes should be preserved, got %q", ap.Notes)
	}
	if !strings.Contains(ap.Notes, "[2026-03-10 14:30] estado PENDING -> CONFIRMED") {
		t.Fatalf("expected log line in notes, got %q", ap.Notes)
	}
}

func TestApplyStatus_RejectsUnknown(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	err := ApplyStatus(ap, Status("NO_SHOW"), time.Now())
	if err == nil {
		t.Fatalf("expected error")
	}
	if ap.Status != string(StatusPending) {
		t.Fatalf("status should be unchanged on error, got %s", ap.Status)
	}
}
