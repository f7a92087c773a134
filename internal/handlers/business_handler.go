package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
	"github.com/marcafacil/booking-api/internal/storage"
	"github.com/marcafacil/booking-api/internal/timezone"
)

// Limite do upload do logótipo (antes da recodificação)
const maxLogoUploadBytes = 5 << 20

type BusinessHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewBusinessHandler(db *gorm.DB, uploader *storage.Uploader) *BusinessHandler {
	return &BusinessHandler{db: db, uploader: uploader}
}

type UpdateBusinessRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

func (h *BusinessHandler) Get(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)

	if role != models.RoleOwner {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode alterar o negócio.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		biz.Name = *req.Name
	}
	if req.Phone != nil {
		biz.Phone = *req.Phone
	}
	if req.Address != nil {
		biz.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		biz.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil {
		if *req.MinAdvanceMinutes < 0 {
			httperr.BadRequest(c, "invalid_min_advance", "Antecedência mínima inválida.")
			return
		}
		biz.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao atualizar o negócio.")
		return
	}

	httpresp.OK(c, biz)
}

// UploadLogo recebe multipart "logo", converte para WebP e guarda no bucket.
func (h *BusinessHandler) UploadLogo(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	role := c.MustGet(middleware.ContextStaffRole).(string)

	if role != models.RoleOwner {
		httperr.Forbidden(c, "owner_only", "Apenas o proprietário pode alterar o negócio.")
		return
	}

	var biz models.Business
	if err := h.db.First(&biz, businessID).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o ficheiro no campo 'logo'.")
		return
	}
	if fileHeader.Size > maxLogoUploadBytes {
		httperr.BadRequest(c, "file_too_large", "O logótipo não pode exceder 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o ficheiro.")
		return
	}
	defer file.Close()

	data, err := storage.EncodeLogoWebP(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida. Use PNG ou JPEG.")
		return
	}

	key := fmt.Sprintf("logos/%d.webp", businessID)
	url, err := h.uploader.PutWebP(c.Request.Context(), key, data)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_logo", "Erro ao guardar o logótipo.")
		return
	}

	biz.LogoURL = url
	if err := h.db.Save(&biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Erro ao atualizar o negócio.")
		return
	}

	httpresp.OK(c, gin.H{"logo_url": url})
}
