package appointment

import (
	"testing"
	"time"

	"github.com/marcafacil/booking-api/internal/models"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained", at(9, 0), at(10, 0), at(9, 15), at(9, 45), true},
		{"adjacent after", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"adjacent before", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(14, 0), at(15, 0), false},
	}

	for _, tc := range cases {
		got := Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd)
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsStaffFree_SkipsCancelled(t *testing.T) {
	existing := []models.Appointment{
		{StartTime: at(9, 0), EndTime: at(10, 0), Status: string(StatusCancelled)},
	}

	if !IsStaffFree(at(9, 0), at(10, 0), existing) {
		t.Fatalf("cancelled appointment should not block the schedule")
	}
}

func TestIsStaffFree_BlockedByActive(t *testing.T) {
	statuses := []Status{StatusPending, StatusAccepted, StatusConfirmed, StatusCompleted}

	for _, s := range statuses {
		existing := []models.Appointment{
			{StartTime: at(9, 0), EndTime: at(10, 0), Status: string(s)},
		}
		if IsStaffFree(at(9, 30), at(10, 30), existing) {
			t.Fatalf("status %s should block the schedule", s)
		}
	}
}

func TestIsStaffFree_AdjacentIsFree(t *testing.T) {
	existing := []models.Appointment{
		{StartTime: at(9, 0), EndTime: at(10, 0), Status: string(StatusConfirmed)},
	}

	if !IsStaffFree(at(10, 0), at(11, 0), existing) {
		t.Fatalf("slot starting exactly at the end of another should be free")
	}
	if !IsStaffFree(at(8, 0), at(9, 0), existing) {
		t.Fatalf("slot ending exactly at the start of another should be free")
	}
}
