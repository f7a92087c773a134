package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// Get devolve o perfil do profissional autenticado e o negócio.
func (h *MeHandler) Get(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextStaffID).(uint)

	var member models.Staff
	if err := h.db.Preload("Business").First(&member, staffID).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Conta não encontrada.")
		return
	}

	httpresp.OK(c, member)
}
