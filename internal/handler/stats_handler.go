package handler

import (
	"edu-perfil/internal/dto"
	"edu-perfil/internal/middleware"
	"edu-perfil/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves aggregate statistics.
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get godoc
// @Summary Get statistics
// @Description Deployment-wide statistics, or a single student's when estudiante_id is given
// @Tags estadisticas
// @Produce json
// @Param estudiante_id query string false "Student id"
// @Success 200 {object} dto.GeneralStatsResponse
// @Success 200 {object} dto.StudentStatsResponse
// @Router /estadisticas [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	if studentID := middleware.LocalString(c, middleware.StudentIDKey); studentID != "" {
		stats, err := h.service.Student(c.UserContext(), studentID)
		if err != nil {
			return err
		}
		return c.JSON(dto.StudentStatsResponse{
			Success:      true,
			Tipo:         "estudiante",
			EstudianteID: studentID,
			Estadisticas: *stats,
		})
	}

	stats, err := h.service.General(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.GeneralStatsResponse{Success: true, Tipo: "general", Estadisticas: *stats})
}
