package handler

import (
	"edu-perfil/internal/catalog"
	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the survey forms.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListGrades godoc
// @Summary List grade bands with a survey form
// @Tags formularios
// @Produce json
// @Success 200 {object} dto.FormListResponse
// @Router /formularios [get]
func (h *CatalogHandler) ListGrades(c *fiber.Ctx) error {
	return c.JSON(dto.FormListResponse{Success: true, Grados: h.catalog.Grades()})
}

// GetForm godoc
// @Summary Get the survey form of a grade band
// @Tags formularios
// @Produce json
// @Param grado path string true "Grade band (1-2, 3-4, 5-6)"
// @Success 200 {object} dto.FormResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /formularios/{grado} [get]
func (h *CatalogHandler) GetForm(c *fiber.Ctx) error {
	grade, _ := c.Locals(middleware.GradeKey).(domain.Grade)
	form, ok := h.catalog.Form(grade)
	if !ok {
		return domain.NewNotFoundError("No hay formulario para el grado " + string(grade))
	}
	return c.JSON(dto.FormResponse{Success: true, Grado: grade, Formulario: form})
}
