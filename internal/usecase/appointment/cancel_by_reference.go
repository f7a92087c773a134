package appointment

import (
	"context"

	"github.com/marcafacil/booking-api/internal/audit"
	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/metrics"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// CancelByReference é o cancelamento feito pelo próprio cliente através do
// código público recebido por email. Cancelar uma marcação já cancelada é
// recusado; os restantes estados são canceláveis.
type CancelByReference struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByReference(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelByReference {
	return &CancelByReference{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelByReference) Execute(
	ctx context.Context,
	reference string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByReference(ctx, reference)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Status == string(domain.StatusCancelled) {
		return nil, httperr.ErrBusiness("already_cancelled")
	}

	now := timezone.NowIn(ap.Business.Timezone)
	if err := domain.ApplyStatus(ap, domain.StatusCancelled, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentStatusChanges.WithLabelValues(string(domain.StatusCancelled)).Inc()

	uc.audit.Dispatch(audit.Event{
		BusinessID: ap.BusinessID,
		Action:     "appointment_cancelled_by_client",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
