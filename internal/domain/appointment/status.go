package appointment

import "github.com/marcafacil/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ===============================
// Validations
// ===============================

// Known valida o valor contra o enum. Não há tabela de transições:
// qualquer estado pode ser definido a partir de qualquer outro.
func Known(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidateStatus(s Status) error {
	if !Known(s) {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

// Counts define quais marcações bloqueiam a agenda do profissional
func CountsAgainstSchedule(s Status) bool {
	return s != StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}
