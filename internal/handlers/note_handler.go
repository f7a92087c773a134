package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/marcafacil/booking-api/internal/domain/note"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type NoteHandler struct {
	db *gorm.DB
}

func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateNoteRequest struct {
	Content       string `json:"content" binding:"required"`
	NoteType      string `json:"note_type"`
	ClientID      *uint  `json:"client_id"`
	AppointmentID *uint  `json:"appointment_id"`
}

type UpdateNoteRequest struct {
	Content  *string `json:"content,omitempty"`
	NoteType *string `json:"note_type,omitempty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *NoteHandler) Create(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	noteType, err := domain.ValidateType(req.NoteType)
	if err != nil {
		httperr.BadRequest(c, "invalid_note_type", "Tipo de nota inválido.")
		return
	}

	if req.ClientID != nil {
		var client models.Client
		if err := h.db.
			Where("id = ? AND business_id = ?", *req.ClientID, businessID).
			First(&client).Error; err != nil {
			httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
			return
		}
	}
	if req.AppointmentID != nil {
		var ap models.Appointment
		if err := h.db.
			Where("id = ? AND business_id = ?", *req.AppointmentID, businessID).
			First(&ap).Error; err != nil {
			httperr.BadRequest(c, "appointment_not_found", "Marcação não encontrada.")
			return
		}
	}

	note := models.Note{
		BusinessID:    businessID,
		CreatedByID:   staffID,
		ClientID:      req.ClientID,
		AppointmentID: req.AppointmentID,
		Content:       req.Content,
		NoteType:      noteType,
	}

	if err := h.db.Create(&note).Error; err != nil {
		httperr.Internal(c, "failed_to_create_note", "Erro ao criar a nota.")
		return
	}

	h.db.Preload("CreatedBy").First(&note, note.ID)
	httpresp.Created(c, note)
}

func (h *NoteHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	q := h.db.
		Preload("CreatedBy").
		Where("business_id = ?", businessID)

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if appointmentID := c.Query("appointment_id"); appointmentID != "" {
		q = q.Where("appointment_id = ?", appointmentID)
	}
	if noteType := c.Query("note_type"); noteType != "" {
		q = q.Where("note_type = ?", noteType)
	}

	var notes []models.Note
	if err := q.Order("created_at DESC").Find(&notes).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notes", "Erro ao listar notas.")
		return
	}

	httpresp.List(c, notes)
}

func (h *NoteHandler) Update(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("id")

	var note models.Note
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&note).Error; err != nil {
		httperr.NotFound(c, "note_not_found", "Nota não encontrada.")
		return
	}

	if err := domain.CheckOwnership(note.CreatedByID, staffID); err != nil {
		httperr.Forbidden(c, "not_note_owner", "Apenas o autor pode alterar a nota.")
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Content != nil {
		if *req.Content == "" {
			httperr.BadRequest(c, "empty_content", "O conteúdo não pode ficar vazio.")
			return
		}
		note.Content = *req.Content
	}
	if req.NoteType != nil {
		noteType, err := domain.ValidateType(*req.NoteType)
		if err != nil {
			httperr.BadRequest(c, "invalid_note_type", "Tipo de nota inválido.")
			return
		}
		note.NoteType = noteType
	}

	if err := h.db.Save(&note).Error; err != nil {
		httperr.Internal(c, "failed_to_update_note", "Erro ao atualizar a nota.")
		return
	}

	httpresp.OK(c, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("id")

	var note models.Note
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&note).Error; err != nil {
		httperr.NotFound(c, "note_not_found", "Nota não encontrada.")
		return
	}

	if err := domain.CheckOwnership(note.CreatedByID, staffID); err != nil {
		httperr.Forbidden(c, "not_note_owner", "Apenas o autor pode remover a nota.")
		return
	}

	if err := h.db.Delete(&note).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_note", "Erro ao remover a nota.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
