package appointment

import (
	"fmt"
	"time"

	"github.com/marcafacil/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus persiste o novo estado na entidade e regista a mudança no
// campo de notas. Qualquer estado conhecido é aceite (sem tabela de
// transições); os carimbos de cancelamento/conclusão são mantidos.
func ApplyStatus(ap *models.Appointment, target Status, now time.Time) error {
	if err := ValidateStatus(target); err != nil {
		return err
	}

	previous := ap.Status
	ap.Status = string(target)

	switch target {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	AppendLog(ap, now, fmt.Sprintf("estado %s -> %s", previous, target))
	return nil
}

// AppendLog acrescenta uma linha datada ao campo de notas da marcação
func AppendLog(ap *models.Appointment, now time.Time, line string) {
	entry := fmt.Sprintf("[%s] %s", now.Format("2006-01-02 15:04"), line)
	if ap.Notes == "" {
		ap.Notes = entry
		return
	}
	ap.Notes = ap.Notes + "\n" + entry
}
