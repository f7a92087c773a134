package slot

import (
	"context"

	"github.com/marcafacil/booking-api/internal/audit"
	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/metrics"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// ======================================================
// ENROLL
// ======================================================

// EnrollClient inscreve um cliente num slot de lotação fixa. A elegibilidade
// é validada primeiro; a lotação e o duplicado são verificados dentro da
// mesma transação que insere a inscrição.
type EnrollClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEnrollClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EnrollClient {
	return &EnrollClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EnrollClient) Execute(
	ctx context.Context,
	businessID uint,
	staffID uint,
	slotID uint,
	clientID uint,
) (*models.Enrollment, error) {

	if _, err := uc.repo.GetSlot(ctx, businessID, slotID); err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	client, err := uc.repo.GetClient(ctx, businessID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if err := domain.CheckEligibility(client.Eligible); err != nil {
		metrics.EnrollmentsRejected.WithLabelValues("not_eligible").Inc()
		return nil, err
	}

	enrollment := &models.Enrollment{
		SlotID:     slotID,
		ClientID:   clientID,
		Status:     string(domain.EnrollmentConfirmed),
		EnrolledAt: timezone.Now(),
	}

	if err := uc.repo.EnrollIfCapacity(ctx, slotID, enrollment); err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			metrics.EnrollmentsRejected.WithLabelValues(code).Inc()
		}
		return nil, err
	}

	metrics.Enrollments.Inc()

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		StaffID:    &staffID,
		Action:     "slot_enrollment_created",
		Entity:     "enrollment",
		EntityID:   &enrollment.ID,
	})

	return enrollment, nil
}
