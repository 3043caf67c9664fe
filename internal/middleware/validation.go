package middleware

import (
	"edu-perfil/internal/domain"
	"edu-perfil/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	StudentIDKey = "validated_estudiante_id"
	GradeKey     = "validated_grado"
)

// ValidationMiddleware validates path and query parameters before handlers run.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	if validator == nil {
		validator = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: validator}
}

// RequireStudentID validates the estudiante_id query parameter and stores it
// under StudentIDKey.
func (vm *ValidationMiddleware) RequireStudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := c.Query("estudiante_id")
		if errors := vm.validator.ValidateStudentID(studentID); len(errors) > 0 {
			return errors
		}
		c.Locals(StudentIDKey, studentID)
		return c.Next()
	}
}

// OptionalStudentID is RequireStudentID for endpoints that also work without one.
func (vm *ValidationMiddleware) OptionalStudentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID := c.Query("estudiante_id")
		if studentID == "" {
			return c.Next()
		}
		if errors := vm.validator.ValidateStudentID(studentID); len(errors) > 0 {
			return errors
		}
		c.Locals(StudentIDKey, studentID)
		return c.Next()
	}
}

// ValidateGrade validates the :grado path parameter.
func (vm *ValidationMiddleware) ValidateGrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		grade := c.Params("grado")
		if errors := vm.validator.ValidateGrade(grade); len(errors) > 0 {
			return errors
		}
		c.Locals(GradeKey, domain.Grade(grade))
		return c.Next()
	}
}

// LocalString reads a string stored by one of the validators.
func LocalString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
