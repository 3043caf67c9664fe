package handler

import (
	"edu-perfil/internal/dto"
	"edu-perfil/internal/service"
	"edu-perfil/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ExerciseHandler handles AI exercise generation.
type ExerciseHandler struct {
	service   service.ExerciseService
	validator *validation.Validator
}

func NewExerciseHandler(service service.ExerciseService, validator *validation.Validator) *ExerciseHandler {
	return &ExerciseHandler{service: service, validator: validator}
}

// Generate godoc
// @Summary Generate exercises
// @Description Generates exercises adapted to the student's active profile
// @Tags ejercicios
// @Accept json
// @Produce json
// @Param request body dto.GenerateExercisesRequest true "Generation request"
// @Success 200 {object} dto.GenerateExercisesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /ejercicios/generar [post]
func (h *ExerciseHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateExercisesRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	in, errs := h.validator.ValidateGenerateRequest(req)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Generate(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
