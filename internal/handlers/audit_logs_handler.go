package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve o histórico de ações do negócio, paginado e filtrável por
// ação e entidade.
func (h *AuditLogsHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)

	if role != models.RoleOwner {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode consultar o histórico.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	q := h.db.Model(&models.AuditLog{}).Where("business_id = ?", businessID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	q.Count(&total)

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Erro ao consultar o histórico.")
		return
	}

	httpresp.OK(c, gin.H{
		"items":    logs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}
