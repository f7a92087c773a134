package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AppointmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_appointments_created_total",
		Help: "Marcações criadas",
	})

	AppointmentStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_appointment_status_changes_total",
		Help: "Mudanças de estado de marcações",
	}, []string{"status"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_notifications_sent_total",
		Help: "Emails de notificação enviados",
	}, []string{"channel"})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_notifications_failed_total",
		Help: "Emails de notificação falhados",
	})

	Enrollments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_enrollments_total",
		Help: "Inscrições em slots",
	})

	EnrollmentsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_enrollments_rejected_total",
		Help: "Inscrições recusadas",
	}, []string{"reason"})
)
