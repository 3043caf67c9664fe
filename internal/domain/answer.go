package domain

import (
	"context"
	"math"
	"time"
)

// ExerciseResponse is a recorded answer to a generated exercise.
type ExerciseResponse struct {
	RespuestaID           string    `json:"respuesta_id"`
	EstudianteID          string    `json:"estudiante_id"`
	EjercicioID           string    `json:"ejercicio_id"`
	SesionID              string    `json:"sesion_id,omitempty"`
	Curso                 Course    `json:"curso"`
	RespuestaSeleccionada string    `json:"respuesta_seleccionada"`
	EsCorrecta            bool      `json:"es_correcta"`
	TiempoRespuestaMs     int64     `json:"tiempo_respuesta_ms"`
	EjercicioSnapshot     *Exercise `json:"ejercicio_snapshot,omitempty"`
	Dispositivo           string    `json:"dispositivo,omitempty"`
	IPAddress             string    `json:"ip_address,omitempty"`
	UserAgent             string    `json:"user_agent,omitempty"`
	FechaRespuesta        time.Time `json:"fecha_respuesta"`
}

type SessionState string

const (
	SessionEnProgreso SessionState = "en_progreso"
	SessionCompletada SessionState = "completada"
)

// Session groups a run of answered exercises.
type Session struct {
	SesionID              string       `json:"sesion_id"`
	EstudianteID          string       `json:"estudiante_id"`
	Curso                 Course       `json:"curso"`
	CantidadEjercicios    int          `json:"cantidad_ejercicios"`
	EjerciciosCompletados int          `json:"ejercicios_completados"`
	Correctas             int          `json:"ejercicios_correctos"`
	Incorrectas           int          `json:"ejercicios_incorrectos"`
	TiempoTotalMs         int64        `json:"tiempo_total_ms"`
	PorcentajeAcierto     float64      `json:"porcentaje_acierto"`
	Estado                SessionState `json:"estado"`
	FechaInicio           time.Time    `json:"fecha_inicio"`
	FechaFin              *time.Time   `json:"fecha_fin,omitempty"`
}

// RecordAnswer folds one answer into the session counters. The session is
// completed once the planned number of exercises has been answered.
func (s *Session) RecordAnswer(correct bool, elapsedMs int64, at time.Time) {
	s.EjerciciosCompletados++
	if correct {
		s.Correctas++
	} else {
		s.Incorrectas++
	}
	s.TiempoTotalMs += elapsedMs
	s.PorcentajeAcierto = math.Round(float64(s.Correctas)/float64(s.EjerciciosCompletados)*10000) / 100

	if s.CantidadEjercicios > 0 && s.EjerciciosCompletados >= s.CantidadEjercicios {
		s.Estado = SessionCompletada
		end := at
		s.FechaFin = &end
		return
	}
	s.Estado = SessionEnProgreso
}

// ResponseRepository persists exercise responses.
type ResponseRepository interface {
	Create(ctx context.Context, response *ExerciseResponse) error
}

// SessionRepository persists practice sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	// GetByIDForUpdate returns (nil, nil) when no session has the id. Inside a
	// transaction the row stays locked until commit or rollback.
	GetByIDForUpdate(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, session *Session) error
}

// GeneralStats aggregates the whole deployment.
type GeneralStats struct {
	TotalEstudiantes         int            `json:"total_estudiantes"`
	TotalPerfilesActivos     int            `json:"total_perfiles_activos"`
	TotalEjerciciosGenerados int            `json:"total_ejercicios_generados"`
	TotalRespuestas          int            `json:"total_respuestas"`
	PorCategoria             map[string]int `json:"por_categoria"`
	PorNivelRiesgo           map[string]int `json:"por_nivel_riesgo"`
}

// StudentStats aggregates a single student's activity.
type StudentStats struct {
	EstudianteID             string  `json:"estudiante_id"`
	TotalRespuestas          int     `json:"total_respuestas"`
	Correctas                int     `json:"correctas"`
	Incorrectas              int     `json:"incorrectas"`
	PorcentajeAcierto        float64 `json:"porcentaje_acierto"`
	TiempoPromedioMs         float64 `json:"tiempo_promedio_ms"`
	TotalEjerciciosGenerados int     `json:"total_ejercicios_generados"`
}

// CountByKey is one row of a grouped count.
type CountByKey struct {
	Key   string `db:"clave"`
	Count int    `db:"total"`
}

// StatsRepository answers aggregate queries.
type StatsRepository interface {
	CountStudents(ctx context.Context) (int, error)
	CountActiveProfiles(ctx context.Context) (int, error)
	CountExercises(ctx context.Context) (int, error)
	CountResponses(ctx context.Context) (int, error)
	ActiveProfilesByCategory(ctx context.Context) ([]CountByKey, error)
	ActiveProfilesByRisk(ctx context.Context) ([]CountByKey, error)
	StudentResponseTotals(ctx context.Context, studentID string) (total, correct int, avgMs float64, err error)
	CountStudentExercises(ctx context.Context, studentID string) (int, error)
}
