package validation

import (
	"regexp"
	"strings"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/service"
)

const (
	maxIDLength       = 64
	maxAnswerLength   = 10
	maxPlannedInSes   = 50
	maxEdad           = 120
	maxQuestionAnswer = 20
)

var (
	validID   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	validType = regexp.MustCompile(`^[a-z_]{1,50}$`)
)

// Validator turns request bodies into typed service inputs. A request that
// fails validation never reaches a service.
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStudentID checks an estudiante_id taken from a body or query.
func (v *Validator) ValidateStudentID(studentID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(studentID) == "" {
		errors = append(errors, domain.NewMissingFieldError("estudiante_id"))
	} else if !isValidID(studentID) {
		errors = append(errors, domain.NewInvalidFormatError("estudiante_id", studentID))
	}
	return errors
}

// ValidateGrade checks a grado band.
func (v *Validator) ValidateGrade(grade string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(grade) == "" {
		errors = append(errors, domain.NewMissingFieldError("grado"))
	} else if !domain.Grade(grade).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("grado", grade))
	}
	return errors
}

// ValidateClassifyRequest requires estudiante_id, grado and respuestas. An
// empty respuestas object is accepted; the classifier falls back to default
// traits for every unanswered question.
func (v *Validator) ValidateClassifyRequest(req dto.ClassifyRequest) (service.ClassifyInput, domain.ValidationErrors) {
	errors := v.ValidateStudentID(req.EstudianteID)
	errors = append(errors, v.ValidateGrade(req.Grado)...)

	if req.Respuestas == nil {
		errors = append(errors, domain.NewMissingFieldError("respuestas"))
	} else {
		for questionID, option := range req.Respuestas {
			if len(option) > maxQuestionAnswer {
				errors = append(errors, domain.NewInvalidFormatError("respuestas."+questionID, option))
			}
		}
	}

	if req.Edad != nil && (*req.Edad <= 0 || *req.Edad > maxEdad) {
		errors = append(errors, domain.NewOutOfRangeError("edad", *req.Edad, 1, maxEdad))
	}

	if len(errors) > 0 {
		return service.ClassifyInput{}, errors
	}

	answers := make(domain.SurveyAnswers, len(req.Respuestas))
	for k, val := range req.Respuestas {
		answers[k] = val
	}
	return service.ClassifyInput{
		StudentID: req.EstudianteID,
		Grade:     domain.Grade(req.Grado),
		Answers:   answers,
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellido:  strings.TrimSpace(req.Apellido),
		Edad:      req.Edad,
	}, nil
}

// ValidateGenerateRequest checks an exercise generation request. cantidad is
// not range checked above; the service clamps it.
func (v *Validator) ValidateGenerateRequest(req dto.GenerateExercisesRequest) (service.GenerateInput, domain.ValidationErrors) {
	errors := v.ValidateStudentID(req.EstudianteID)
	errors = append(errors, validateCourse(req.Curso, true)...)

	if req.Cantidad < 0 {
		errors = append(errors, domain.NewOutOfRangeError("cantidad", req.Cantidad, 0, 10))
	}
	if req.TipoEspecifico != "" && !validType.MatchString(req.TipoEspecifico) {
		errors = append(errors, domain.NewInvalidFormatError("tipo_especifico", req.TipoEspecifico))
	}
	if req.ForzarNivel != "" && !domain.Level(req.ForzarNivel).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("forzar_nivel", req.ForzarNivel))
	}

	if len(errors) > 0 {
		return service.GenerateInput{}, errors
	}
	return service.GenerateInput{
		StudentID:    req.EstudianteID,
		Course:       domain.Course(req.Curso),
		Quantity:     req.Cantidad,
		SpecificType: req.TipoEspecifico,
		ForcedLevel:  domain.Level(req.ForzarNivel),
	}, nil
}

// ValidateSaveAnswerRequest checks a response submission. Connection details
// (ip, user agent) are filled in by the handler.
func (v *Validator) ValidateSaveAnswerRequest(req dto.SaveAnswerRequest) (service.SaveAnswerInput, domain.ValidationErrors) {
	errors := v.ValidateStudentID(req.EstudianteID)
	errors = append(errors, validateExerciseID(req.EjercicioID)...)
	errors = append(errors, validateSelected("respuesta_seleccionada", req.RespuestaSeleccionada)...)
	errors = append(errors, validateCourse(req.Curso, false)...)

	if req.SesionID != "" && !isValidID(req.SesionID) {
		errors = append(errors, domain.NewInvalidFormatError("sesion_id", req.SesionID))
	}
	if req.TiempoRespuestaMs < 0 {
		errors = append(errors, domain.NewInvalidFormatError("tiempo_respuesta_ms", "negative"))
	}

	if len(errors) > 0 {
		return service.SaveAnswerInput{}, errors
	}
	return service.SaveAnswerInput{
		StudentID:  req.EstudianteID,
		ExerciseID: req.EjercicioID,
		SessionID:  req.SesionID,
		Course:     domain.Course(req.Curso),
		Selected:   req.RespuestaSeleccionada,
		ElapsedMs:  req.TiempoRespuestaMs,
		Device:     req.Dispositivo,
	}, nil
}

func (v *Validator) ValidateValidateAnswerRequest(req dto.ValidateAnswerRequest) (service.ValidateAnswerInput, domain.ValidationErrors) {
	errors := validateExerciseID(req.EjercicioID)
	errors = append(errors, validateSelected("respuesta", req.Respuesta)...)
	if len(errors) > 0 {
		return service.ValidateAnswerInput{}, errors
	}
	return service.ValidateAnswerInput{ExerciseID: req.EjercicioID, Selected: req.Respuesta}, nil
}

func (v *Validator) ValidateStartSessionRequest(req dto.StartSessionRequest) (service.StartSessionInput, domain.ValidationErrors) {
	errors := v.ValidateStudentID(req.EstudianteID)
	errors = append(errors, validateCourse(req.Curso, true)...)
	if req.CantidadEjercicios <= 0 || req.CantidadEjercicios > maxPlannedInSes {
		errors = append(errors, domain.NewOutOfRangeError("cantidad_ejercicios", req.CantidadEjercicios, 1, maxPlannedInSes))
	}
	if len(errors) > 0 {
		return service.StartSessionInput{}, errors
	}
	return service.StartSessionInput{
		StudentID: req.EstudianteID,
		Course:    domain.Course(req.Curso),
		Planned:   req.CantidadEjercicios,
	}, nil
}

// Helper functions for validation

func validateCourse(course string, required bool) domain.ValidationErrors {
	if strings.TrimSpace(course) == "" {
		if required {
			return domain.ValidationErrors{domain.NewMissingFieldError("curso")}
		}
		return nil
	}
	if !domain.Course(course).Valid() {
		return domain.ValidationErrors{domain.NewInvalidFormatError("curso", course)}
	}
	return nil
}

func validateExerciseID(exerciseID string) domain.ValidationErrors {
	if strings.TrimSpace(exerciseID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("ejercicio_id")}
	}
	if !isValidID(exerciseID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("ejercicio_id", exerciseID)}
	}
	return nil
}

func validateSelected(field, selected string) domain.ValidationErrors {
	if strings.TrimSpace(selected) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(selected) > maxAnswerLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError(field, len(selected), 1, maxAnswerLength)}
	}
	return nil
}

// isValidID allows alphanumerics, hyphens and underscores, 1-64 characters.
func isValidID(s string) bool {
	if len(s) == 0 || len(s) > maxIDLength {
		return false
	}
	return validID.MatchString(s)
}
