package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/dto"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	ucAppointment "github.com/marcafacil/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateStatusUC *ucAppointment.UpdateStatus
	availabilityUC *ucAppointment.CheckAvailability
	listByDateUC   *ucAppointment.ListByDate
	listByMonthUC  *ucAppointment.ListByMonth
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateStatusUC *ucAppointment.UpdateStatus,
	availabilityUC *ucAppointment.CheckAvailability,
	listByDateUC *ucAppointment.ListByDate,
	listByMonthUC *ucAppointment.ListByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		availabilityUC: availabilityUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityCheckRequest struct {
	StaffID     uint   `json:"staff_id" binding:"required"`
	Date        string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime   string `json:"start_time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			BusinessID:  businessID,
			StaffID:     staffID,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientEmail: req.ClientEmail,
			ServiceID:   req.ServiceID,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.listByDateUC.Execute(c.Request.Context(), businessID, staffID, dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar marcações.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	aps, err := h.listByMonthUC.Execute(c.Request.Context(), businessID, staffID, year, month)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Ano ou mês inválido.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar marcações.")
		return
	}

	httpresp.OK(c, gin.H{
		"year":         year,
		"month":        month,
		"appointments": dto.FromAppointments(aps),
	})
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		businessID,
		staffID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Marcação não encontrada.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Estado desconhecido.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar marcação.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// AVAILABILITY (boolean check, verbo PUT na mesma rota)
// ======================================================

func (h *AppointmentHandler) CheckAvailability(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req AvailabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	available, err := h.availabilityUC.Execute(
		c.Request.Context(),
		ucAppointment.CheckAvailabilityInput{
			BusinessID:  businessID,
			StaffID:     req.StaffID,
			Date:        req.Date,
			StartTime:   req.StartTime,
			DurationMin: req.DurationMin,
		},
	)
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Pedido de disponibilidade inválido.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao verificar disponibilidade.")
		return
	}

	httpresp.OK(c, gin.H{"available": available})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "too_soon"):
		httperr.BadRequest(c, "too_soon", "Horário inválido.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "outside_working_hours"):
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "time_conflict"), httperr.IsExclusionConflict(err):
		httperr.Conflict(c, "time_conflict", "Conflito de horário.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar marcação.")
	}
}
