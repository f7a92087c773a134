package appointment

import (
	"context"
	"fmt"

	"github.com/marcafacil/booking-api/internal/audit"
	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/metrics"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/notification"
	"github.com/marcafacil/booking-api/internal/payments"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type NotifyStatusInput struct {
	BusinessID    uint
	StaffID       uint
	AppointmentID uint

	Status domain.Status

	SendClientEmail   bool
	SendBusinessEmail bool
}

type NotifyStatusOutput struct {
	Appointment      *models.Appointment   `json:"appointment"`
	Notifications    []notification.Result `json:"notifications"`
	PaymentProcessed bool                  `json:"payment_processed"`
}

// ======================================================
// USE CASE
// ======================================================

// NotifyStatus aplica o estado pedido à marcação e dispara as notificações
// associadas. O email é best-effort: falhas entram no resultado como texto e
// não desfazem a mudança de estado já persistida. Chamadas repetidas com o
// mesmo estado reenviam os mesmos emails.
type NotifyStatus struct {
	repo     domain.Repository
	notifier *notification.Notifier
	payments payments.Provider
	audit    *audit.Dispatcher
}

func NewNotifyStatus(
	repo domain.Repository,
	notifier *notification.Notifier,
	provider payments.Provider,
	audit *audit.Dispatcher,
) *NotifyStatus {
	return &NotifyStatus{
		repo:     repo,
		notifier: notifier,
		payments: provider,
		audit:    audit,
	}
}

func (uc *NotifyStatus) Execute(
	ctx context.Context,
	in NotifyStatusInput,
) (*NotifyStatusOutput, error) {

	ap, err := uc.repo.GetAppointmentWithRelations(ctx, in.BusinessID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(ap.Business.Timezone)
	if err := domain.ApplyStatus(ap, in.Status, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.AppointmentStatusChanges.WithLabelValues(string(in.Status)).Inc()

	out := &NotifyStatusOutput{Appointment: ap}

	out.Notifications = uc.notifier.NotifyStatus(
		ap,
		in.Status,
		in.SendClientEmail,
		in.SendBusinessEmail,
	)
	for _, r := range out.Notifications {
		if r.Sent {
			metrics.NotificationsSent.WithLabelValues(r.Channel).Inc()
		} else {
			metrics.NotificationsFailed.Inc()
		}
	}

	if in.Status == domain.StatusCompleted && ap.Service.Price > 0 {
		out.Notifications = append(out.Notifications, uc.processPayment(ctx, ap, out))
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		StaffID:    &in.StaffID,
		Action:     "appointment_notified",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata:   map[string]any{"status": string(in.Status)},
	})

	return out, nil
}

func (uc *NotifyStatus) processPayment(
	ctx context.Context,
	ap *models.Appointment,
	out *NotifyStatusOutput,
) notification.Result {

	price := notification.FormatPrice(ap.Service.Price)

	result, err := uc.payments.Process(ctx, payments.Charge{
		Amount:      ap.Service.Price,
		Description: fmt.Sprintf("%s — %s", ap.Business.Name, ap.Service.Name),
		PayerEmail:  ap.Client.Email,
	})
	if err != nil {
		return notification.Result{
			Channel: "payment",
			Message: fmt.Sprintf("Pagamento de %s falhou", price),
			Error:   err.Error(),
		}
	}

	out.PaymentProcessed = result.Processed

	return notification.Result{
		Channel: "payment",
		Sent:    true,
		Message: fmt.Sprintf("Pagamento de %s processado (%s)", price, result.TransactionID),
	}
}
