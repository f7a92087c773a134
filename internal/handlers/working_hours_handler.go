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
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`
}

type UpdateWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	staffID, ok := h.resolveStaffID(c, businessID)
	if !ok {
		return
	}

	var hours []models.WorkingHours
	if err := h.db.
		Where("staff_id = ?", staffID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_list_working_hours", "Erro ao obter o expediente.")
		return
	}

	httpresp.List(c, hours)
}

// Update substitui o expediente completo do profissional.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	staffID, ok := h.resolveStaffID(c, businessID)
	if !ok {
		return
	}

	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, e := range req.Entries {
		if e.Active && (!validHM(e.StartTime) || !validHM(e.EndTime)) {
			httperr.BadRequest(c, "invalid_time", "Horas no formato HH:mm.")
			return
		}
		if (e.LunchStart != "" || e.LunchEnd != "") &&
			(!validHM(e.LunchStart) || !validHM(e.LunchEnd)) {
			httperr.BadRequest(c, "invalid_time", "Horas no formato HH:mm.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_id = ?", staffID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		for _, e := range req.Entries {
			wh := models.WorkingHours{
				StaffID:    staffID,
				Weekday:    e.Weekday,
				StartTime:  e.StartTime,
				EndTime:    e.EndTime,
				LunchStart: e.LunchStart,
				LunchEnd:   e.LunchEnd,
				Active:     e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_working_hours", "Erro ao guardar o expediente.")
		return
	}

	var hours []models.WorkingHours
	h.db.Where("staff_id = ?", staffID).Order("weekday ASC").Find(&hours)
	httpresp.List(c, hours)
}

// resolveStaffID usa ?staff_id= quando presente (validando que pertence ao
// negócio), caso contrário o profissional autenticado.
func (h *WorkingHoursHandler) resolveStaffID(c *gin.Context, businessID uint) (uint, bool) {
	if raw := c.Query("staff_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
			return 0, false
		}
		var member models.Staff
		if err := h.db.
			Where("id = ? AND business_id = ?", id, businessID).
			First(&member).Error; err != nil {
			httperr.NotFound(c, "staff_not_found", "Membro da equipa não encontrado.")
			return 0, false
		}
		return uint(id), true
	}
	return c.MustGet(middleware.ContextStaffID).(uint), true
}

func validHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
