package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

func bookableRepo() *fakeRepo {
	return &fakeRepo{
		business: &models.Business{ID: 1, Timezone: "Europe/Lisbon", MinAdvanceMinutes: 120},
		service:  &models.Service{ID: 4, Name: "Corte Clássico", DurationMin: 30, Price: 15},
		workingHours: &models.WorkingHours{
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		},
	}
}

func createInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BusinessID:  1,
		StaffID:     2,
		ClientName:  "Rui Matos",
		ClientPhone: "912345678",
		ClientEmail: "rui@example.pt",
		ServiceID:   4,
		Date:        "2027-06-15",
		Time:        "10:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateAppointment(repo, testDispatcher(t))

	ap, err := uc.Execute(context.Background(), createInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, uint(1), ap.ClientID)
	assert.Equal(t, 30*time.Minute, ap.EndTime.Sub(ap.StartTime))
}

func TestCreateAppointment_TimeConflict(t *testing.T) {
	repo := bookableRepo()

	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	repo.existing = []models.Appointment{{
		StartTime: time.Date(2027, 6, 15, 9, 45, 0, 0, loc),
		EndTime:   time.Date(2027, 6, 15, 10, 15, 0, 0, loc),
		Status:    string(domain.StatusConfirmed),
	}}

	uc := NewCreateAppointment(repo, testDispatcher(t))

	_, err = uc.Execute(context.Background(), createInput())
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)
}

func TestCreateAppointment_CancelledDoesNotConflict(t *testing.T) {
	repo := bookableRepo()

	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	repo.existing = []models.Appointment{{
		StartTime: time.Date(2027, 6, 15, 9, 45, 0, 0, loc),
		EndTime:   time.Date(2027, 6, 15, 10, 15, 0, 0, loc),
		Status:    string(domain.StatusCancelled),
	}}

	uc := NewCreateAppointment(repo, testDispatcher(t))

	_, err = uc.Execute(context.Background(), createInput())
	assert.NoError(t, err)
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateAppointment(repo, testDispatcher(t))

	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	now := time.Now().In(loc)
	in := createInput()
	in.Date = now.Format("2006-01-02")
	in.Time = now.Add(10 * time.Minute).Format("15:04")

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "too_soon"), "got %v", err)
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateAppointment(repo, testDispatcher(t))

	in := createInput()
	in.Time = "20:00"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"), "got %v", err)
}

func TestCreateAppointment_InvalidTime(t *testing.T) {
	repo := bookableRepo()
	uc := NewCreateAppointment(repo, testDispatcher(t))

	in := createInput()
	in.Time = "25:99"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"), "got %v", err)
}
