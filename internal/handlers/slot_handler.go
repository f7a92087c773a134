package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
	ucSlot "github.com/marcafacil/booking-api/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	db           *gorm.DB
	enrollUC     *ucSlot.EnrollClient
	removeUC     *ucSlot.RemoveEnrollment
	attendanceUC *ucSlot.ToggleAttendance
}

func NewSlotHandler(
	db *gorm.DB,
	enrollUC *ucSlot.EnrollClient,
	removeUC *ucSlot.RemoveEnrollment,
	attendanceUC *ucSlot.ToggleAttendance,
) *SlotHandler {
	return &SlotHandler{
		db:           db,
		enrollUC:     enrollUC,
		removeUC:     removeUC,
		attendanceUC: attendanceUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	StaffID     *uint  `json:"staff_id"`
	Date        string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime   string `json:"start_time" binding:"required"` // HH:mm
	EndTime     string `json:"end_time" binding:"required"`   // HH:mm
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Description string `json:"description"`
}

type UpdateSlotRequest struct {
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
	StaffID     *uint   `json:"staff_id,omitempty"`
}

// ======================================================
// SLOT CRUD
// ======================================================

func (h *SlotHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.Internal(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND business_id = ?", req.ServiceID, businessID).
		First(&svc).Error; err != nil {
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	start, err1 := parseDateTimeInBusiness(&biz, req.Date, req.StartTime)
	end, err2 := parseDateTimeInBusiness(&biz, req.Date, req.EndTime)
	if err1 != nil || err2 != nil || !end.After(start) {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	slot := models.Slot{
		BusinessID:  businessID,
		ServiceID:   svc.ID,
		StaffID:     req.StaffID,
		StartTime:   start,
		EndTime:     end,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if err := h.db.Create(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_create_slot", "Erro ao criar o slot.")
		return
	}

	httpresp.Created(c, slot)
}

func (h *SlotHandler) ListByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.Internal(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	date, err := parseDateInBusiness(&biz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	var slots []models.Slot
	if err := h.db.
		Preload("Service").
		Preload("Staff").
		Preload("Enrollments", "status <> ?", "CANCELLED").
		Preload("Enrollments.Client").
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID, start, end,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar slots.")
		return
	}

	httpresp.List(c, slots)
}

func (h *SlotHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("slotId")

	var slot models.Slot
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&slot).Error; err != nil {
		httperr.NotFound(c, "slot_not_found", "Slot não encontrado.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Capacity != nil {
		if *req.Capacity < 1 {
			httperr.BadRequest(c, "invalid_capacity", "A lotação deve ser positiva.")
			return
		}
		slot.Capacity = *req.Capacity
	}
	if req.Description != nil {
		slot.Description = *req.Description
	}
	if req.StaffID != nil {
		slot.StaffID = req.StaffID
	}

	if err := h.db.Save(&slot).Error; err != nil {
		httperr.Internal(c, "failed_to_update_slot", "Erro ao atualizar o slot.")
		return
	}

	httpresp.OK(c, slot)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("slotId")

	res := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&models.Slot{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_slot", "Erro ao remover o slot.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "slot_not_found", "Slot não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}

// ======================================================
// ENROLLMENTS
// ======================================================

func (h *SlotHandler) Enroll(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	slotID, clientID, ok := h.pathIDs(c, "clientId")
	if !ok {
		return
	}

	enrollment, err := h.enrollUC.Execute(
		c.Request.Context(),
		businessID,
		staffID,
		slotID,
		clientID,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "Slot não encontrado.")
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		case httperr.IsBusiness(err, "client_not_eligible"):
			httperr.BadRequest(c, "client_not_eligible", "Cliente não elegível para inscrição.")
		case httperr.IsBusiness(err, "capacity_exceeded"):
			httperr.Conflict(c, "capacity_exceeded", "O slot está lotado.")
		case httperr.IsBusiness(err, "already_enrolled"):
			httperr.Conflict(c, "already_enrolled", "Cliente já inscrito neste slot.")
		default:
			httperr.Internal(c, "failed_to_enroll", "Erro ao inscrever o cliente.")
		}
		return
	}

	httpresp.Created(c, enrollment)
}

func (h *SlotHandler) RemoveEnrollment(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	slotID, clientID, ok := h.pathIDs(c, "clientId")
	if !ok {
		return
	}

	enrollment, err := h.removeUC.Execute(
		c.Request.Context(),
		businessID,
		staffID,
		slotID,
		clientID,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "Slot não encontrado.")
		case httperr.IsBusiness(err, "enrollment_not_found"):
			httperr.NotFound(c, "enrollment_not_found", "Inscrição não encontrada.")
		default:
			httperr.Internal(c, "failed_to_remove_enrollment", "Erro ao remover a inscrição.")
		}
		return
	}

	httpresp.OK(c, enrollment)
}

func (h *SlotHandler) ToggleAttendance(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	slotID, clientID, ok := h.pathIDs(c, "studentId")
	if !ok {
		return
	}

	enrollment, err := h.attendanceUC.Execute(
		c.Request.Context(),
		businessID,
		slotID,
		clientID,
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.NotFound(c, "slot_not_found", "Slot não encontrado.")
		case httperr.IsBusiness(err, "enrollment_not_found"):
			httperr.NotFound(c, "enrollment_not_found", "Inscrição não encontrada.")
		default:
			httperr.Internal(c, "failed_to_toggle_attendance", "Erro ao registar presença.")
		}
		return
	}

	httpresp.OK(c, enrollment)
}

func (h *SlotHandler) pathIDs(c *gin.Context, clientParam string) (uint, uint, bool) {
	slotID, err1 := strconv.ParseUint(c.Param("slotId"), 10, 64)
	clientID, err2 := strconv.ParseUint(c.Param(clientParam), 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, 0, false
	}
	return uint(slotID), uint(clientID), true
}
