package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"edu-perfil/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exerciseColumns = []string{
	"ejercicio_id", "estudiante_id", "curso", "tipo", "nivel", "titulo", "enunciado", "opciones",
	"respuesta_correcta", "explicacion", "contexto", "operacion_principal", "incluye_visual",
	"perfil_usado", "usado", "fecha_uso", "fecha_creacion",
}

func TestExerciseConverters(t *testing.T) {
	used := time.Now().Truncate(time.Second)
	e := &domain.Exercise{
		ID:                "MATEMATICAS_BASICO_01",
		EstudianteID:      "EST001",
		Curso:             domain.CourseMatematicas,
		Tipo:              "suma",
		Nivel:             domain.LevelBasico,
		Opciones:          []string{"A) 1", "B) 2"},
		RespuestaCorrecta: "B",
		PerfilUsado:       &domain.ProfileSummary{EstiloAprendizaje: domain.StyleVisual},
		Usado:             true,
		FechaUso:          &used,
		FechaCreacion:     used,
	}

	m := fromDomainExercise(e)
	assert.False(t, m.Contexto.Valid)
	assert.True(t, m.PerfilUsado.Valid)
	assert.True(t, m.FechaUso.Valid)
	assert.Equal(t, e, toDomainExercise(m))

	e.PerfilUsado = nil
	e.FechaUso = nil
	m = fromDomainExercise(e)
	assert.False(t, m.PerfilUsado.Valid)
	assert.False(t, m.FechaUso.Valid)

	assert.Nil(t, toDomainExercise(nil))
	assert.Nil(t, fromDomainExercise(nil))
}

func TestExerciseRepository_Create(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExerciseRepository(db)

	mock.ExpectExec(`INSERT INTO ejercicios_generados`).
		WithArgs(
			"MATEMATICAS_BASICO_01", "EST001", "matematicas", "suma", "basico", "Manzanas",
			"¿Cuántas?", `["A) 1","B) 2"]`, "B", "Porque sí", "vida cotidiana", nil,
			true, sqlmock.AnyArg(), false, nil, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &domain.Exercise{
		ID:                "MATEMATICAS_BASICO_01",
		EstudianteID:      "EST001",
		Curso:             domain.CourseMatematicas,
		Tipo:              "suma",
		Nivel:             domain.LevelBasico,
		Titulo:            "Manzanas",
		Enunciado:         "¿Cuántas?",
		Opciones:          []string{"A) 1", "B) 2"},
		RespuestaCorrecta: "B",
		Explicacion:       "Porque sí",
		Contexto:          "vida cotidiana",
		IncluyeVisual:     true,
		PerfilUsado:       &domain.ProfileSummary{Grado: domain.Grade12},
	}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.False(t, e.FechaCreacion.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseRepository_GetByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExerciseRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(exerciseColumns).AddRow(
		"VERBAL_INTERMEDIO_01", "EST001", "verbal", "sinonimos", "intermedio", "Sinónimos",
		"Elige", []byte(`["A) feliz","B) triste"]`), "A", "Significan lo mismo", nil, nil, false,
		[]byte(`{"estilo_aprendizaje":"auditivo","interes":"social","nivel_matematicas":"basico","nivel_lectura":"inicial","grado":"1-2"}`),
		false, nil, now,
	)
	mock.ExpectQuery(`FROM ejercicios_generados WHERE ejercicio_id = \$1`).
		WithArgs("VERBAL_INTERMEDIO_01").
		WillReturnRows(rows)

	e, err := repo.GetByID(context.Background(), "VERBAL_INTERMEDIO_01")
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, domain.CourseVerbal, e.Curso)
	assert.Equal(t, []string{"A) feliz", "B) triste"}, e.Opciones)
	require.NotNil(t, e.PerfilUsado)
	assert.Equal(t, domain.StyleAuditivo, e.PerfilUsado.EstiloAprendizaje)
	assert.Nil(t, e.FechaUso)
	assert.Empty(t, e.Contexto)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExerciseRepository(db)

	mock.ExpectQuery(`FROM ejercicios_generados`).WillReturnError(sql.ErrNoRows)

	e, err := repo.GetByID(context.Background(), "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, e)
}

func TestExerciseRepository_MarkUsed(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExerciseRepository(db)
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE ejercicios_generados SET usado = TRUE, fecha_uso = \$2 WHERE ejercicio_id = \$1`).
		WithArgs("EJ1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkUsed(context.Background(), "EJ1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseRepository_MarkUsed_Missing(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewExerciseRepository(db)

	mock.ExpectExec(`UPDATE ejercicios_generados`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkUsed(context.Background(), "EJ1", time.Now())
	assert.True(t, errors.Is(err, ErrNoRowsAffected))
}
