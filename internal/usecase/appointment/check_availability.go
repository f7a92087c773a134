package appointment

import (
	"context"
	"time"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CheckAvailabilityInput struct {
	BusinessID  uint
	StaffID     uint
	Date        string // YYYY-MM-DD
	StartTime   string // HH:mm
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

// CheckAvailability responde se o profissional está livre no intervalo
// [início, início+duração). Compara apenas com marcações não canceladas do
// dia; o expediente não entra nesta verificação.
type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in CheckAvailabilityInput,
) (bool, error) {

	if in.DurationMin <= 0 {
		return false, httperr.ErrBusiness("invalid_duration")
	}

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return false, err
	}

	loc := timezone.Location(biz.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.StartTime,
		loc,
	)
	if err != nil {
		return false, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(in.DurationMin) * time.Minute)

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := uc.repo.ListAppointmentsForDay(ctx, in.StaffID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	return domain.IsStaffFree(start, end, existing), nil
}
