package slot

import (
	"context"

	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

// ToggleAttendance inverte o registo de presença de uma inscrição
type ToggleAttendance struct {
	repo domain.Repository
}

func NewToggleAttendance(repo domain.Repository) *ToggleAttendance {
	return &ToggleAttendance{repo: repo}
}

func (uc *ToggleAttendance) Execute(
	ctx context.Context,
	businessID uint,
	slotID uint,
	clientID uint,
) (*models.Enrollment, error) {

	if _, err := uc.repo.GetSlot(ctx, businessID, slotID); err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	enrollment, err := uc.repo.GetEnrollment(ctx, slotID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("enrollment_not_found")
	}

	enrollment.Attendance = !enrollment.Attendance

	if err := uc.repo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}
