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

type sqlxSessionRepository struct {
	db DBTX
}

// NewSessionRepository returns a domain.SessionRepository backed by sesiones.
func NewSessionRepository(db DBTX) domain.SessionRepository {
	return &sqlxSessionRepository{db: db}
}

func (r *sqlxSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.FechaInicio.IsZero() {
		session.FechaInicio = time.Now()
	}
	if session.Estado == "" {
		session.Estado = domain.SessionEnProgreso
	}
	query := `INSERT INTO sesiones (sesion_id, estudiante_id, curso, cantidad_ejercicios,
	            ejercicios_completados, correctas, incorrectas, tiempo_total_ms, porcentaje_acierto,
	            estado, fecha_inicio, fecha_fin)
	          VALUES (:sesion_id, :estudiante_id, :curso, :cantidad_ejercicios,
	            :ejercicios_completados, :correctas, :incorrectas, :tiempo_total_ms, :porcentaje_acierto,
	            :estado, :fecha_inicio, :fecha_fin)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainSession(session)); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetByIDForUpdate reads the session and row-locks it until the surrounding
// transaction ends, so concurrent answers to one session apply in turn.
func (r *sqlxSessionRepository) GetByIDForUpdate(ctx context.Context, sessionID string) (*domain.Session, error) {
	var m models.Session
	query := `SELECT sesion_id, estudiante_id, curso, cantidad_ejercicios, ejercicios_completados,
	            correctas, incorrectas, tiempo_total_ms, porcentaje_acierto, estado, fecha_inicio, fecha_fin
	          FROM sesiones WHERE sesion_id = $1
	          FOR UPDATE`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
	}
	return toDomainSession(&m), nil
}

// Update writes the session counters and state.
func (r *sqlxSessionRepository) Update(ctx context.Context, session *domain.Session) error {
	query := `UPDATE sesiones SET
	            ejercicios_completados = :ejercicios_completados,
	            correctas = :correctas,
	            incorrectas = :incorrectas,
	            tiempo_total_ms = :tiempo_total_ms,
	            porcentaje_acierto = :porcentaje_acierto,
	            estado = :estado,
	            fecha_fin = :fecha_fin
	          WHERE sesion_id = :sesion_id`
	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainSession(session))
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", session.SesionID, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to update session %s: %w", session.SesionID, err)
	}
	return nil
}

func toDomainSession(m *models.Session) *domain.Session {
	if m == nil {
		return nil
	}
	s := &domain.Session{
		SesionID:              m.SesionID,
		EstudianteID:          m.EstudianteID,
		Curso:                 domain.Course(m.Curso),
		CantidadEjercicios:    m.CantidadEjercicios,
		EjerciciosCompletados: m.EjerciciosCompletados,
		Correctas:             m.Correctas,
		Incorrectas:           m.Incorrectas,
		TiempoTotalMs:         m.TiempoTotalMs,
		PorcentajeAcierto:     m.PorcentajeAcierto,
		Estado:                domain.SessionState(m.Estado),
		FechaInicio:           m.FechaInicio,
		FechaFin:              util.TimePtr(m.FechaFin),
	}
	return s
}

func fromDomainSession(s *domain.Session) *models.Session {
	if s == nil {
		return nil
	}
	m := &models.Session{
		SesionID:              s.SesionID,
		EstudianteID:          s.EstudianteID,
		Curso:                 string(s.Curso),
		CantidadEjercicios:    s.CantidadEjercicios,
		EjerciciosCompletados: s.EjerciciosCompletados,
		Correctas:             s.Correctas,
		Incorrectas:           s.Incorrectas,
		TiempoTotalMs:         s.TiempoTotalMs,
		PorcentajeAcierto:     s.PorcentajeAcierto,
		Estado:                string(s.Estado),
		FechaInicio:           s.FechaInicio,
		FechaFin:              util.NullTime(s.FechaFin),
	}
	return m
}
