package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	ucAppointment "github.com/marcafacil/booking-api/internal/usecase/appointment"
)

type NotificationHandler struct {
	notifyUC *ucAppointment.NotifyStatus
}

func NewNotificationHandler(notifyUC *ucAppointment.NotifyStatus) *NotificationHandler {
	return &NotificationHandler{notifyUC: notifyUC}
}

type NotifyRequest struct {
	Status            string `json:"status" binding:"required"`
	SendClientEmail   *bool  `json:"send_client_email"`
	SendBusinessEmail *bool  `json:"send_business_email"`
}

// Notify aplica o estado pedido e dispara os emails associados. Por omissão
// ambos os canais estão ativos; os flags permitem desligar cada um.
func (h *NotificationHandler) Notify(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sendClient := req.SendClientEmail == nil || *req.SendClientEmail
	sendBusiness := req.SendBusinessEmail == nil || *req.SendBusinessEmail

	out, err := h.notifyUC.Execute(
		c.Request.Context(),
		ucAppointment.NotifyStatusInput{
			BusinessID:        businessID,
			StaffID:           staffID,
			AppointmentID:     uint(id),
			Status:            domain.Status(req.Status),
			SendClientEmail:   sendClient,
			SendBusinessEmail: sendBusiness,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Marcação não encontrada.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Estado desconhecido.")
		default:
			httperr.Internal(c, "notification_failed", "Erro ao notificar marcação.")
		}
		return
	}

	httpresp.OK(c, out)
}
