package notification

import (
	"fmt"
	"strconv"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// ======================================================
// TEMPLATES (PT)
// ======================================================

type Template struct {
	Name    string
	Subject string
}

var clientTemplates = map[domain.Status]Template{
	domain.StatusPending:   {Name: "Marcação Criada", Subject: "A sua marcação foi criada"},
	domain.StatusAccepted:  {Name: "Marcação Confirmada", Subject: "A sua marcação foi confirmada"},
	domain.StatusConfirmed: {Name: "Marcação Confirmada", Subject: "A sua marcação foi confirmada"},
	domain.StatusCancelled: {Name: "Marcação Cancelada", Subject: "A sua marcação foi cancelada"},
	domain.StatusCompleted: {Name: "Marcação Concluída", Subject: "Obrigado pela sua visita"},
}

var businessTemplates = map[domain.Status]Template{
	domain.StatusPending: {Name: "Nova Marcação", Subject: "Nova marcação recebida"},
}

func ClientTemplateFor(status domain.Status) (Template, bool) {
	t, ok := clientTemplates[status]
	return t, ok
}

func BusinessTemplateFor(status domain.Status) (Template, bool) {
	t, ok := businessTemplates[status]
	return t, ok
}

// ======================================================
// RENDER
// ======================================================

// FormatPrice devolve o valor no formato usado nos emails ("€50")
func FormatPrice(price float64) string {
	return "€" + strconv.FormatFloat(price, 'f', -1, 64)
}

func renderClientBody(t Template, ap *models.Appointment) string {
	loc := timezone.Location(ap.Business.Timezone)
	when := ap.StartTime.In(loc).Format("02/01/2006 15:04")

	body := fmt.Sprintf(
		"<p>Olá %s,</p><p><strong>%s</strong> — %s em %s, dia %s.</p>",
		ap.Client.Name,
		t.Name,
		ap.Service.Name,
		ap.Business.Name,
		when,
	)

	if t.Name == "Marcação Concluída" && ap.Service.Price > 0 {
		body += fmt.Sprintf("<p>Total: %s</p>", FormatPrice(ap.Service.Price))
	}

	return body
}

func renderBusinessBody(t Template, ap *models.Appointment) string {
	loc := timezone.Location(ap.Business.Timezone)
	when := ap.StartTime.In(loc).Format("02/01/2006 15:04")

	return fmt.Sprintf(
		"<p><strong>%s</strong></p><p>%s — %s (%s), dia %s.</p>",
		t.Name,
		ap.Service.Name,
		ap.Client.Name,
		ap.Client.Phone,
		when,
	)
}
