package notification

import (
	"log"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/email"
	"github.com/marcafacil/booking-api/internal/models"
)

// ======================================================
// RESULTS
// ======================================================

type Result struct {
	Channel   string `json:"channel"` // client | business | payment
	Template  string `json:"template,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Sent      bool   `json:"sent"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ======================================================
// NOTIFIER
// ======================================================

// Notifier envia os emails de uma mudança de estado. O envio é best-effort:
// falhas ficam registadas no resultado e nunca desfazem a persistência.
type Notifier struct {
	sender email.Sender
}

func New(sender email.Sender) *Notifier {
	return &Notifier{sender: sender}
}

// NotifyStatus envia os emails associados ao estado pedido. Chamadas
// repetidas com o mesmo estado reenviam os mesmos emails (não há
// deduplicação).
func (n *Notifier) NotifyStatus(
	ap *models.Appointment,
	status domain.Status,
	sendClient bool,
	sendBusiness bool,
) []Result {

	var results []Result

	if sendClient && ap.Client.Email != "" {
		if t, ok := ClientTemplateFor(status); ok {
			results = append(results, n.send(
				"client",
				t,
				ap.Client.Email,
				renderClientBody(t, ap),
			))
		}
	}

	if sendBusiness {
		if t, ok := BusinessTemplateFor(status); ok {
			recipient := businessRecipient(ap)
			if recipient != "" {
				results = append(results, n.send(
					"business",
					t,
					recipient,
					renderBusinessBody(t, ap),
				))
			}
		}
	}

	return results
}

func (n *Notifier) send(channel string, t Template, to string, body string) Result {
	r := Result{
		Channel:   channel,
		Template:  t.Name,
		Recipient: to,
	}

	if err := n.sender.Send(to, t.Subject, body); err != nil {
		log.Printf("notification: falha a enviar %q para %s: %v", t.Name, to, err)
		r.Error = err.Error()
		return r
	}

	r.Sent = true
	return r
}

func businessRecipient(ap *models.Appointment) string {
	if ap.Staff.Email != "" {
		return ap.Staff.Email
	}
	return ""
}
