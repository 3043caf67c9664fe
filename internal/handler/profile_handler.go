package handler

import (
	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/middleware"
	"edu-perfil/internal/service"
	"edu-perfil/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles survey classification and profile lookups.
type ProfileHandler struct {
	service   service.ProfileService
	validator *validation.Validator
}

func NewProfileHandler(service service.ProfileService, validator *validation.Validator) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validator}
}

func invalidBody(err error) error {
	return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
}

// Classify godoc
// @Summary Classify a learning profile
// @Description Classifies the 10-question survey and stores the result as the student's active profile
// @Tags perfiles
// @Accept json
// @Produce json
// @Param request body dto.ClassifyRequest true "Survey answers"
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /perfiles/clasificar [post]
func (h *ProfileHandler) Classify(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	in, errs := h.validator.ValidateClassifyRequest(req)
	if len(errs) > 0 {
		return errs
	}

	profile, err := h.service.Classify(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.ClassifyResponse{
		Success: true,
		Mensaje: "Perfil clasificado exitosamente",
		Perfil:  profile,
	})
}

// GetActive godoc
// @Summary Get the active profile
// @Tags perfiles
// @Produce json
// @Param estudiante_id query string true "Student id"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /perfiles [get]
func (h *ProfileHandler) GetActive(c *fiber.Ctx) error {
	studentID := middleware.LocalString(c, middleware.StudentIDKey)
	profile, err := h.service.GetActive(c.UserContext(), studentID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProfileResponse{Success: true, Perfil: profile})
}
