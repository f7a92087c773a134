package slot

import "github.com/marcafacil/booking-api/internal/httperr"

// ===============================
// Enrollment Status
// ===============================

type EnrollmentStatus string

const (
	EnrollmentConfirmed EnrollmentStatus = "CONFIRMED"
	EnrollmentPending   EnrollmentStatus = "PENDING"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// Active define quais inscrições contam para a lotação
func Active(s EnrollmentStatus) bool {
	return s != EnrollmentCancelled
}

// ===============================
// Capacity rules
// ===============================

// CanEnroll valida a lotação: com N inscrições ativas num slot de
// capacidade N, a inscrição seguinte é recusada.
func CanEnroll(activeCount int64, capacity int) error {
	if capacity > 0 && activeCount >= int64(capacity) {
		return httperr.ErrBusiness("capacity_exceeded")
	}
	return nil
}

// CheckEligibility valida a elegibilidade do cliente no momento da inscrição
func CheckEligibility(eligible bool) error {
	if !eligible {
		return httperr.ErrBusiness("client_not_eligible")
	}
	return nil
}
