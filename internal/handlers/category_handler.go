package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/httpresp"
	"github.com/marcafacil/booking-api/internal/middleware"
	"github.com/marcafacil/booking-api/internal/models"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var categories []models.Category
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}

	httpresp.List(c, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.Category{
		BusinessID: businessID,
		Name:       req.Name,
		Color:      req.Color,
	}

	if err := h.db.Create(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category", "Erro ao criar a categoria.")
		return
	}

	httpresp.Created(c, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("id")

	var category models.Category
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&category).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "empty_name", "O nome não pode ficar vazio.")
			return
		}
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := h.db.Save(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_update_category", "Erro ao atualizar a categoria.")
		return
	}

	httpresp.OK(c, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)
	id := c.Param("id")

	var category models.Category
	if err := h.db.
		Where("id = ? AND business_id = ?", id, businessID).
		First(&category).Error; err != nil {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	// Os serviços da categoria ficam sem categoria (FK em SET NULL).
	if err := h.db.Delete(&category).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_category", "Erro ao remover a categoria.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
