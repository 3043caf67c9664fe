package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_RecordAnswer(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := &Session{SesionID: "SES_1", CantidadEjercicios: 3, Estado: SessionEnProgreso, FechaInicio: start}

	s.RecordAnswer(true, 1200, start.Add(time.Minute))
	assert.Equal(t, 1, s.EjerciciosCompletados)
	assert.Equal(t, 1, s.Correctas)
	assert.Equal(t, 100.0, s.PorcentajeAcierto)
	assert.Equal(t, SessionEnProgreso, s.Estado)
	assert.Nil(t, s.FechaFin)

	s.RecordAnswer(false, 800, start.Add(2*time.Minute))
	s.RecordAnswer(false, 1000, start.Add(3*time.Minute))

	assert.Equal(t, 3, s.EjerciciosCompletados)
	assert.Equal(t, 2, s.Incorrectas)
	assert.Equal(t, int64(3000), s.TiempoTotalMs)
	assert.Equal(t, 33.33, s.PorcentajeAcierto)
	assert.Equal(t, SessionCompletada, s.Estado)
	if assert.NotNil(t, s.FechaFin) {
		assert.Equal(t, start.Add(3*time.Minute), *s.FechaFin)
	}
}

func TestSession_RecordAnswer_OpenEnded(t *testing.T) {
	s := &Session{}
	for i := 0; i < 5; i++ {
		s.RecordAnswer(true, 10, time.Now())
	}
	assert.Equal(t, SessionEnProgreso, s.Estado)
	assert.Nil(t, s.FechaFin)
}

func TestGradeCourseLevel_Valid(t *testing.T) {
	assert.True(t, Grade34.Valid())
	assert.False(t, Grade("7-8").Valid())
	assert.True(t, CourseVerbal.Valid())
	assert.False(t, Course("historia").Valid())
	assert.True(t, LevelAvanzado.Valid())
	assert.False(t, Level("experto").Valid())
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{NewMissingFieldError("estudiante_id"), NewInvalidFormatError("grado", "9-10")}

	assert.Equal(t, []string{"estudiante_id", "grado"}, errs.Fields())
	assert.Equal(t, `validation failed: estudiante_id: is required; grado: has invalid value "9-10"`, errs.Error())
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewUpstreamError(cause)

	assert.Equal(t, CodeUpstreamFailure, err.Code)
	assert.Equal(t, "text generation failed: connection reset", err.Message)
	assert.ErrorIs(t, err, cause)
}
