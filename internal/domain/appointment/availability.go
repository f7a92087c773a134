package appointment

import (
	"time"

	"github.com/marcafacil/booking-api/internal/models"
)

type AvailabilityInput struct {
	BusinessID uint
	StaffID    uint
	ServiceID  uint
	Date       time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Overlaps testa sobreposição de intervalos semiabertos [start, end)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsStaffFree responde se o intervalo candidato está livre face às
// marcações existentes do profissional. Marcações canceladas não contam.
// Intervalos adjacentes (fim == início) não conflituam.
func IsStaffFree(start, end time.Time, existing []models.Appointment) bool {
	for _, ap := range existing {
		if !CountsAgainstSchedule(Status(ap.Status)) {
			continue
		}
		if Overlaps(ap.StartTime, ap.EndTime, start, end) {
			return false
		}
	}
	return true
}
