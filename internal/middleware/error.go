package middleware

import (
	"errors"
	"net/http"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized error handler. Every failure is answered
// with dto.ErrorResponse.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Strings("fields", validationErrs.Fields()),
			)
			return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false,
				Error:   validationErrs.Error(),
				Code:    string(domain.CodeValidation),
				Fields:  validationErrs.Fields(),
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			message := domainErr.Message
			if statusCode >= http.StatusInternalServerError {
				logger.Error("Domain error occurred",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
					zap.Int("status", statusCode),
					zap.Error(domainErr.Err),
				)
				if domainErr.Code == domain.CodeInternal {
					message = "Error interno del servidor"
				}
			} else {
				logger.Warn("Domain error occurred",
					zap.String("path", c.Path()),
					zap.String("code", string(domainErr.Code)),
					zap.String("message", domainErr.Message),
				)
			}
			return c.Status(statusCode).JSON(dto.ErrorResponse{
				Success: false,
				Error:   message,
				Code:    string(domainErr.Code),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Success: false,
				Error:   fiberErr.Message,
				Code:    "HTTP_ERROR",
			})
		}

		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false,
			Error:   "Error interno del servidor",
			Code:    string(domain.CodeInternal),
		})
	}
}

func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeUpstreamFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
