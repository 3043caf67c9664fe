package repository

import (
	"context"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/repository/models"
	"edu-perfil/internal/util"
)

type sqlxResponseRepository struct {
	db DBTX
}

// NewResponseRepository returns a domain.ResponseRepository backed by respuestas.
func NewResponseRepository(db DBTX) domain.ResponseRepository {
	return &sqlxResponseRepository{db: db}
}

func (r *sqlxResponseRepository) Create(ctx context.Context, response *domain.ExerciseResponse) error {
	if response.FechaRespuesta.IsZero() {
		response.FechaRespuesta = time.Now()
	}
	query := `INSERT INTO respuestas (respuesta_id, estudiante_id, ejercicio_id, sesion_id, curso,
	            respuesta_seleccionada, es_correcta, tiempo_respuesta_ms, ejercicio_snapshot,
	            dispositivo, ip_address, user_agent, fecha_respuesta)
	          VALUES (:respuesta_id, :estudiante_id, :ejercicio_id, :sesion_id, :curso,
	            :respuesta_seleccionada, :es_correcta, :tiempo_respuesta_ms, :ejercicio_snapshot,
	            :dispositivo, :ip_address, :user_agent, :fecha_respuesta)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainResponse(response)); err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func fromDomainResponse(r *domain.ExerciseResponse) *models.Response {
	if r == nil {
		return nil
	}
	return &models.Response{
		RespuestaID:           r.RespuestaID,
		EstudianteID:          r.EstudianteID,
		EjercicioID:           r.EjercicioID,
		SesionID:              util.NullString(r.SesionID),
		Curso:                 string(r.Curso),
		RespuestaSeleccionada: r.RespuestaSeleccionada,
		EsCorrecta:            r.EsCorrecta,
		TiempoRespuestaMs:     r.TiempoRespuestaMs,
		EjercicioSnapshot:     models.NewJSON(r.EjercicioSnapshot),
		Dispositivo:           util.NullString(r.Dispositivo),
		IPAddress:             util.NullString(r.IPAddress),
		UserAgent:             util.NullString(r.UserAgent),
		FechaRespuesta:        r.FechaRespuesta,
	}
}
