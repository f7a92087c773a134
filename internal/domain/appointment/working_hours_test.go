package appointment

import (
	"testing"
	"time"

	"github.com/marcafacil/booking-api/internal/models"
)

func weekdayHours() *models.WorkingHours {
	return &models.WorkingHours{
		Weekday:    2,
		StartTime:  "09:00",
		EndTime:    "18:00",
		LunchStart: "12:30",
		LunchEnd:   "14:00",
		Active:     true,
	}
}

func TestWithinWorkingHours(t *testing.T) {
	wh := weekdayHours()

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"morning fits", at(9, 0), at(10, 0), true},
		{"ends at closing", at(17, 0), at(18, 0), true},
		{"before opening", at(8, 30), at(9, 30), false},
		{"past closing", at(17, 30), at(18, 30), false},
		{"inside lunch", at(13, 0), at(13, 30), false},
		{"overlaps lunch start", at(12, 0), at(13, 0), false},
		{"ends when lunch starts", at(11, 30), at(12, 30), true},
		{"starts when lunch ends", at(14, 0), at(15, 0), true},
	}

	for _, tc := range cases {
		got := WithinWorkingHours(wh, tc.start, tc.end)
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestWithinWorkingHours_NoLunch(t *testing.T) {
	wh := weekdayHours()
	wh.LunchStart = ""
	wh.LunchEnd = ""

	if !WithinWorkingHours(wh, at(12, 30), at(13, 30)) {
		t.Fatalf("midday should be available without a lunch break")
	}
}

func TestWithinWorkingHours_Inactive(t *testing.T) {
	wh := weekdayHours()
	wh.Active = false

	if WithinWorkingHours(wh, at(10, 0), at(11, 0)) {
		t.Fatalf("inactive day should reject all times")
	}
	if WithinWorkingHours(nil, at(10, 0), at(11, 0)) {
		t.Fatalf("missing schedule should reject all times")
	}
}
