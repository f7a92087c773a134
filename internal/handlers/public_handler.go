package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/notification"
	ucAppointment "github.com/marcafacil/booking-api/internal/usecase/appointment"
	"github.com/marcafacil/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serve o marketplace: páginas públicas por slug, sem login.
type PublicHandler struct {
	db             *gorm.DB
	repo           domain.Repository
	createUC       *ucAppointment.CreateAppointment
	availabilityUC *ucAppointment.GetAvailability
	cancelUC       *ucAppointment.CancelByReference
	notifier       *notification.Notifier
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	availabilityUC *ucAppointment.GetAvailability,
	cancelUC *ucAppointment.CancelByReference,
	notifier *notification.Notifier,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		repo:           repo,
		createUC:       createUC,
		availabilityUC: availabilityUC,
		cancelUC:       cancelUC,
		notifier:       notifier,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublicCreateAppointmentRequest struct {
	StaffID   uint   `json:"staff_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	Notes string `json:"notes"`
}

// ======================================================
// MARKETPLACE
// ======================================================

func (h *PublicHandler) GetBusiness(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{
		"id":       biz.ID,
		"name":     biz.Name,
		"slug":     biz.Slug,
		"phone":    biz.Phone,
		"address":  biz.Address,
		"logo_url": biz.LogoURL,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("business_id = ? AND active = ?", biz.ID, true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListStaff(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := h.db.
		Select("id", "name").
		Where("business_id = ? AND active = ?", biz.ID, true).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, staff)
}

// GetAvailability devolve a grelha de horários livres para um serviço e
// profissional num dia.
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	var query struct {
		StaffID   uint   `form:"staff_id" binding:"required"`
		ServiceID uint   `form:"service_id" binding:"required"`
		Date      string `form:"date" binding:"required"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetros inválidos.")
		return
	}

	date, err := parseDateInBusiness(biz, query.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID: biz.ID,
		StaffID:    query.StaffID,
		ServiceID:  query.ServiceID,
		Date:       date,
	})
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular a disponibilidade.")
		return
	}

	httpresp.OK(c, gin.H{"date": query.Date, "slots": slots})
}

// CreateAppointment cria a marcação pública e envia os emails de criação
// (cliente e negócio) em best-effort.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ClientEmail != "" && !validators.HasValidSyntax(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "Email inválido.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BusinessID:  biz.ID,
		StaffID:     req.StaffID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	// Recarrega com as relações para os templates de email
	full, loadErr := h.repo.GetAppointmentWithRelations(c.Request.Context(), biz.ID, ap.ID)
	if loadErr == nil {
		h.notifier.NotifyStatus(full, domain.Status(full.Status), true, true)
	} else {
		log.Printf("marcação %d criada mas sem emails: %v", ap.ID, loadErr)
	}

	httpresp.Created(c, gin.H{
		"id":         ap.ID,
		"reference":  ap.Reference,
		"status":     ap.Status,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
	})
}

// CancelAppointment permite ao cliente cancelar pela referência pública.
func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	biz, ok := h.businessFromSlug(c)
	if !ok {
		return
	}

	reference := c.Param("reference")

	existing, err := h.repo.GetAppointmentByReference(c.Request.Context(), reference)
	if err != nil || existing.BusinessID != biz.ID {
		httperr.NotFound(c, "appointment_not_found", "Marcação não encontrada.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), reference)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Marcação não encontrada.")
		case httperr.IsBusiness(err, "already_cancelled"):
			httperr.Conflict(c, "already_cancelled", "A marcação já está cancelada.")
		default:
			httperr.Internal(c, "failed_to_cancel", "Erro ao cancelar a marcação.")
		}
		return
	}

	httpresp.OK(c, gin.H{
		"reference": ap.Reference,
		"status":    ap.Status,
	})
}

func (h *PublicHandler) businessFromSlug(c *gin.Context) (*models.Business, bool) {
	biz, err := h.repo.GetBusinessBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return nil, false
	}
	return biz, true
}
