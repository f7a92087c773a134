package slot

import (
	"context"

	"github.com/marcafacil/booking-api/internal/audit"
	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

// RemoveEnrollment cancela a inscrição de um cliente num slot. A linha não é
// apagada: fica com estado CANCELLED e deixa de contar para a lotação.
type RemoveEnrollment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveEnrollment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveEnrollment {
	return &RemoveEnrollment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveEnrollment) Execute(
	ctx context.Context,
	businessID uint,
	staffID uint,
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

	enrollment.Status = string(domain.EnrollmentCancelled)

	if err := uc.repo.UpdateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		StaffID:    &staffID,
		Action:     "slot_enrollment_removed",
		Entity:     "enrollment",
		EntityID:   &enrollment.ID,
	})

	return enrollment, nil
}
