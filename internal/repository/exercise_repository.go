package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/repository/models"
	"edu-perfil/internal/util"
)

type sqlxExerciseRepository struct {
	db DBTX
}

// NewExerciseRepository returns a domain.ExerciseRepository backed by ejercicios_generados.
func NewExerciseRepository(db DBTX) domain.ExerciseRepository {
	return &sqlxExerciseRepository{db: db}
}

func (r *sqlxExerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) error {
	if exercise.FechaCreacion.IsZero() {
		exercise.FechaCreacion = time.Now()
	}
	query := `INSERT INTO ejercicios_generados (ejercicio_id, estudiante_id, curso, tipo, nivel, titulo,
	            enunciado, opciones, respuesta_correcta, explicacion, contexto, operacion_principal,
	            incluye_visual, perfil_usado, usado, fecha_uso, fecha_creacion)
	          VALUES (:ejercicio_id, :estudiante_id, :curso, :tipo, :nivel, :titulo,
	            :enunciado, :opciones, :respuesta_correcta, :explicacion, :contexto, :operacion_principal,
	            :incluye_visual, :perfil_usado, :usado, :fecha_uso, :fecha_creacion)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainExercise(exercise)); err != nil {
		return fmt.Errorf("failed to create exercise %s: %w", exercise.ID, err)
	}
	return nil
}

func (r *sqlxExerciseRepository) GetByID(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	var m models.Exercise
	query := `SELECT ejercicio_id, estudiante_id, curso, tipo, nivel, titulo, enunciado, opciones,
	            respuesta_correcta, explicacion, contexto, operacion_principal, incluye_visual,
	            perfil_usado, usado, fecha_uso, fecha_creacion
	          FROM ejercicios_generados WHERE ejercicio_id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, exerciseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exercise %s: %w", exerciseID, err)
	}
	return toDomainExercise(&m), nil
}

func (r *sqlxExerciseRepository) MarkUsed(ctx context.Context, exerciseID string, at time.Time) error {
	query := `UPDATE ejercicios_generados SET usado = TRUE, fecha_uso = $2 WHERE ejercicio_id = $1`
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, exerciseID, at)
	if err != nil {
		return fmt.Errorf("failed to mark exercise %s used: %w", exerciseID, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to mark exercise %s used: %w", exerciseID, err)
	}
	return nil
}

func toDomainExercise(m *models.Exercise) *domain.Exercise {
	if m == nil {
		return nil
	}
	e := &domain.Exercise{
		ID:                 m.EjercicioID,
		EstudianteID:       m.EstudianteID,
		Curso:              domain.Course(m.Curso),
		Tipo:               m.Tipo,
		Nivel:              domain.Level(m.Nivel),
		Titulo:             m.Titulo,
		Enunciado:          m.Enunciado,
		Opciones:           []string(m.Opciones),
		RespuestaCorrecta:  m.RespuestaCorrecta,
		Explicacion:        m.Explicacion,
		Contexto:           m.Contexto.String,
		OperacionPrincipal: m.OperacionPrincipal.String,
		IncluyeVisual:      m.IncluyeVisual,
		PerfilUsado:        m.PerfilUsado.Ptr(),
		Usado:              m.Usado,
		FechaCreacion:      m.FechaCreacion,
		FechaUso:           util.TimePtr(m.FechaUso),
	}
	return e
}

func fromDomainExercise(e *domain.Exercise) *models.Exercise {
	if e == nil {
		return nil
	}
	m := &models.Exercise{
		EjercicioID:        e.ID,
		EstudianteID:       e.EstudianteID,
		Curso:              string(e.Curso),
		Tipo:               e.Tipo,
		Nivel:              string(e.Nivel),
		Titulo:             e.Titulo,
		Enunciado:          e.Enunciado,
		Opciones:           models.StringSlice(e.Opciones),
		RespuestaCorrecta:  e.RespuestaCorrecta,
		Explicacion:        e.Explicacion,
		Contexto:           util.NullString(e.Contexto),
		OperacionPrincipal: util.NullString(e.OperacionPrincipal),
		IncluyeVisual:      e.IncluyeVisual,
		PerfilUsado:        models.NewJSON(e.PerfilUsado),
		Usado:              e.Usado,
		FechaUso:           util.NullTime(e.FechaUso),
		FechaCreacion:      e.FechaCreacion,
	}
	return m
}
