package handler

import (
	"strings"

	"edu-perfil/internal/dto"
	"edu-perfil/internal/service"
	"edu-perfil/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AnswerHandler handles exercise responses and practice sessions.
type AnswerHandler struct {
	answers   service.AnswerService
	sessions  service.SessionService
	validator *validation.Validator
}

func NewAnswerHandler(answers service.AnswerService, sessions service.SessionService, validator *validation.Validator) *AnswerHandler {
	return &AnswerHandler{answers: answers, sessions: sessions, validator: validator}
}

// clientIP prefers the proxy headers over the socket address.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if real := c.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.IP()
}

// Save godoc
// @Summary Save an answer
// @Description Records a student's answer and updates the session counters
// @Tags respuestas
// @Accept json
// @Produce json
// @Param request body dto.SaveAnswerRequest true "Answer"
// @Success 200 {object} dto.SaveAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /respuestas [post]
func (h *AnswerHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	in, errs := h.validator.ValidateSaveAnswerRequest(req)
	if len(errs) > 0 {
		return errs
	}
	in.IPAddress = clientIP(c)
	in.UserAgent = c.Get(fiber.HeaderUserAgent)

	resp, err := h.answers.Save(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Validate godoc
// @Summary Check an answer without saving it
// @Tags respuestas
// @Accept json
// @Produce json
// @Param request body dto.ValidateAnswerRequest true "Answer"
// @Success 200 {object} dto.ValidateAnswerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /respuestas/validar [post]
func (h *AnswerHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	in, errs := h.validator.ValidateValidateAnswerRequest(req)
	if len(errs) > 0 {
		return errs
	}

	resp, err := h.answers.Validate(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartSession godoc
// @Summary Start a practice session
// @Tags sesiones
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Session"
// @Success 201 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /sesiones [post]
func (h *AnswerHandler) StartSession(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(err)
	}
	in, errs := h.validator.ValidateStartSessionRequest(req)
	if len(errs) > 0 {
		return errs
	}

	session, err := h.sessions.Start(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Success: true, Sesion: session})
}
