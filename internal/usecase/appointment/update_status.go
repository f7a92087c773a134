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

// UpdateStatus persiste um novo estado numa marcação do profissional.
// Não há tabela de transições: qualquer estado conhecido é aceite a partir
// de qualquer outro (a interface decide que botões mostrar).
type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	businessID uint,
	staffID uint,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForStaff(ctx, appointmentID, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(biz.Timezone)
	if err := domain.ApplyStatus(ap, target, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentStatusChanges.WithLabelValues(string(target)).Inc()

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		StaffID:    &staffID,
		Action:     "appointment_status_changed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata:   map[string]any{"status": string(target)},
	})

	return ap, nil
}
