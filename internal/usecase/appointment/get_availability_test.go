package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/models"
)

func gridDate(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	return time.Date(2027, 6, 15, 0, 0, 0, 0, loc)
}

func TestGetAvailability_Grid(t *testing.T) {
	repo := bookableRepo()
	repo.service.DurationMin = 60
	repo.workingHours = &models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "12:00",
		Active:    true,
	}

	date := gridDate(t)
	repo.existing = []models.Appointment{{
		StartTime: date.Add(10 * time.Hour),
		EndTime:   date.Add(11 * time.Hour),
		Status:    string(domain.StatusConfirmed),
	}}

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		StaffID:    2,
		ServiceID:  4,
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "12:00"},
	}, slots)
}

func TestGetAvailability_OverlapBeforeOpening(t *testing.T) {
	repo := bookableRepo()
	repo.service.DurationMin = 60
	repo.workingHours = &models.WorkingHours{
		StartTime: "09:00",
		EndTime:   "11:00",
		Active:    true,
	}

	// Marcação que começa antes do expediente mas invade o primeiro horário
	date := gridDate(t)
	repo.existing = []models.Appointment{{
		StartTime: date.Add(8*time.Hour + 30*time.Minute),
		EndTime:   date.Add(9*time.Hour + 30*time.Minute),
		Status:    string(domain.StatusConfirmed),
	}}

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		StaffID:    2,
		ServiceID:  4,
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Start: "10:00", End: "11:00"},
	}, slots)
}

func TestGetAvailability_SkipsLunch(t *testing.T) {
	repo := bookableRepo()
	repo.service.DurationMin = 60
	repo.workingHours = &models.WorkingHours{
		StartTime:  "09:00",
		EndTime:    "14:00",
		LunchStart: "12:00",
		LunchEnd:   "13:00",
		Active:     true,
	}

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		StaffID:    2,
		ServiceID:  4,
		Date:       gridDate(t),
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
		{Start: "13:00", End: "14:00"},
	}, slots)
}

func TestGetAvailability_InactiveDayIsEmpty(t *testing.T) {
	repo := bookableRepo()
	repo.workingHours.Active = false

	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: 1,
		StaffID:    2,
		ServiceID:  4,
		Date:       gridDate(t),
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}
