package handler

import (
	"context"
	"time"

	"edu-perfil/internal/dto"
	"edu-perfil/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the route handlers of the API.
type Handlers struct {
	Profile  *ProfileHandler
	Exercise *ExerciseHandler
	Answer   *AnswerHandler
	Stats    *StatsHandler
	Catalog  *CatalogHandler
	// Ping reports the cache backend health; nil skips the check.
	Ping func(ctx context.Context) error
}

// SetupRoutes mounts the API under /api. auth guards every route except the
// survey catalog and /health.
func SetupRoutes(app *fiber.App, h Handlers, auth fiber.Handler, vm *middleware.ValidationMiddleware) {
	app.Get("/health", func(c *fiber.Ctx) error {
		resp := dto.HealthResponse{Status: "ok"}
		if h.Ping != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			resp.Cache = "ok"
			if err := h.Ping(ctx); err != nil {
				resp.Cache = "unavailable"
			}
		}
		return c.JSON(resp)
	})

	api := app.Group("/api")

	api.Get("/formularios", h.Catalog.ListGrades)
	api.Get("/formularios/:grado", vm.ValidateGrade(), h.Catalog.GetForm)

	api.Post("/perfiles/clasificar", auth, h.Profile.Classify)
	api.Get("/perfiles", auth, vm.RequireStudentID(), h.Profile.GetActive)

	api.Post("/ejercicios/generar", auth, h.Exercise.Generate)

	api.Post("/respuestas", auth, h.Answer.Save)
	api.Post("/respuestas/validar", auth, h.Answer.Validate)
	api.Post("/sesiones", auth, h.Answer.StartSession)

	api.Get("/estadisticas", auth, vm.OptionalStudentID(), h.Stats.Get)
}
