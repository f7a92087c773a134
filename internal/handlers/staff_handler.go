package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// ======================================================
// CRUD
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var staff []models.Staff
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar a equipa.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)

	if role != models.RoleOwner {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode gerir a equipa.")
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "O domínio do email não existe.")
		return
	}

	newRole := models.RoleStaff
	if req.Role == models.RoleOwner {
		newRole = models.RoleOwner
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a palavra-passe.")
		return
	}

	member := models.Staff{
		BusinessID:   businessID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         newRole,
		Active:       true,
	}

	if err := h.db.Create(&member).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_in_use", "Já existe uma conta com este email.")
			return
		}
		httperr.Internal(c, "failed_to_create_staff", "Erro ao criar o membro da equipa.")
		return
	}

	httpresp.Created(c, member)
}

func (h *StaffHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	id := c.Param("id")

	var member models.Staff
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Membro da equipa não encontrado.")
		return
	}

	// Um membro pode editar o próprio perfil; o resto é só para o owner.
	if role != models.RoleOwner && member.ID != staffID {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode gerir a equipa.")
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Role != nil && role == models.RoleOwner {
		if *req.Role != models.RoleOwner && *req.Role != models.RoleStaff {
			httperr.BadRequest(c, "invalid_role", "Função inválida.")
			return
		}
		member.Role = *req.Role
	}
	if req.Active != nil && role == models.RoleOwner {
		member.Active = *req.Active
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			httperr.BadRequest(c, "weak_password", "A palavra-passe deve ter pelo menos 6 caracteres.")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a palavra-passe.")
			return
		}
		member.PasswordHash = string(hash)
	}

	if err := h.db.Save(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Erro ao atualizar o membro da equipa.")
		return
	}

	httpresp.OK(c, member)
}

func (h *StaffHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)
	staffID := c.MustGet(middleware.ContextStaffID).(uint)
	id := c.Param("id")

	if role != models.RoleOwner {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode gerir a equipa.")
		return
	}

	var member models.Staff
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&member).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Membro da equipa não encontrado.")
		return
	}

	if member.ID == staffID {
		httperr.BadRequest(c, "cannot_delete_self", "Não pode remover a própria conta.")
		return
	}

	if err := h.db.Delete(&member).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Erro ao remover o membro da equipa.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
