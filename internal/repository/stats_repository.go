package repository

import (
	"context"
	"fmt"

	"edu-perfil/internal/domain"
)

type sqlxStatsRepository struct {
	db DBTX
}

// NewStatsRepository returns a domain.StatsRepository.
func NewStatsRepository(db DBTX) domain.StatsRepository {
	return &sqlxStatsRepository{db: db}
}

func (r *sqlxStatsRepository) count(ctx context.Context, what, query string, args ...interface{}) (int, error) {
	var n int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", what, err)
	}
	return n, nil
}

func (r *sqlxStatsRepository) CountStudents(ctx context.Context) (int, error) {
	return r.count(ctx, "students", `SELECT COUNT(*) FROM estudiantes`)
}

func (r *sqlxStatsRepository) CountActiveProfiles(ctx context.Context) (int, error) {
	return r.count(ctx, "active profiles", `SELECT COUNT(*) FROM perfiles WHERE activo = TRUE`)
}

func (r *sqlxStatsRepository) CountExercises(ctx context.Context) (int, error) {
	return r.count(ctx, "exercises", `SELECT COUNT(*) FROM ejercicios_generados`)
}

func (r *sqlxStatsRepository) CountResponses(ctx context.Context) (int, error) {
	return r.count(ctx, "responses", `SELECT COUNT(*) FROM respuestas`)
}

func (r *sqlxStatsRepository) CountStudentExercises(ctx context.Context, studentID string) (int, error) {
	return r.count(ctx, "student exercises", `SELECT COUNT(*) FROM ejercicios_generados WHERE estudiante_id = $1`, studentID)
}

func (r *sqlxStatsRepository) ActiveProfilesByCategory(ctx context.Context) ([]domain.CountByKey, error) {
	return r.groupActive(ctx, "categoria_principal")
}

func (r *sqlxStatsRepository) ActiveProfilesByRisk(ctx context.Context) ([]domain.CountByKey, error) {
	return r.groupActive(ctx, "nivel_riesgo")
}

// groupActive counts active profiles per value of column. column is never
// user input.
func (r *sqlxStatsRepository) groupActive(ctx context.Context, column string) ([]domain.CountByKey, error) {
	var rows []domain.CountByKey
	query := `SELECT ` + column + ` AS clave, COUNT(*) AS total FROM perfiles
	          WHERE activo = TRUE GROUP BY ` + column + ` ORDER BY ` + column
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to group active profiles by %s: %w", column, err)
	}
	return rows, nil
}

type responseTotals struct {
	Total   int     `db:"total"`
	Correct int     `db:"correctas"`
	AvgMs   float64 `db:"promedio_ms"`
}

func (r *sqlxStatsRepository) StudentResponseTotals(ctx context.Context, studentID string) (int, int, float64, error) {
	var t responseTotals
	query := `SELECT COUNT(*) AS total,
	            COALESCE(SUM(CASE WHEN es_correcta THEN 1 ELSE 0 END), 0) AS correctas,
	            COALESCE(AVG(tiempo_respuesta_ms), 0)::float8 AS promedio_ms
	          FROM respuestas WHERE estudiante_id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &t, query, studentID); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to load response totals for %s: %w", studentID, err)
	}
	return t.Total, t.Correct, t.AvgMs, nil
}
