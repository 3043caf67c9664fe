package service

import (
	"context"
	"math"

	"edu-perfil/internal/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatsService aggregates deployment-wide and per-student figures.
type StatsService interface {
	General(ctx context.Context) (*domain.GeneralStats, error)
	Student(ctx context.Context, studentID string) (*domain.StudentStats, error)
}

type statsService struct {
	stats  domain.StatsRepository
	logger *zap.Logger
}

func NewStatsService(stats domain.StatsRepository, logger *zap.Logger) StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &statsService{stats: stats, logger: logger}
}

func toCountMap(rows []domain.CountByKey) map[string]int {
	return lo.SliceToMap(rows, func(r domain.CountByKey) (string, int) {
		return r.Key, r.Count
	})
}

// General runs the independent aggregate queries concurrently.
func (s *statsService) General(ctx context.Context) (*domain.GeneralStats, error) {
	var (
		out        domain.GeneralStats
		byCategory []domain.CountByKey
		byRisk     []domain.CountByKey
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalEstudiantes, err = s.stats.CountStudents(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalPerfilesActivos, err = s.stats.CountActiveProfiles(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalEjerciciosGenerados, err = s.stats.CountExercises(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalRespuestas, err = s.stats.CountResponses(gctx)
		return err
	})
	g.Go(func() (err error) {
		byCategory, err = s.stats.ActiveProfilesByCategory(gctx)
		return err
	})
	g.Go(func() (err error) {
		byRisk, err = s.stats.ActiveProfilesByRisk(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to gather general statistics", zap.Error(err))
		return nil, domain.NewInternalError("failed to gather statistics", err)
	}

	out.PorCategoria = toCountMap(byCategory)
	out.PorNivelRiesgo = toCountMap(byRisk)
	return &out, nil
}

func (s *statsService) Student(ctx context.Context, studentID string) (*domain.StudentStats, error) {
	out := domain.StudentStats{EstudianteID: studentID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalRespuestas, out.Correctas, out.TiempoPromedioMs, err = s.stats.StudentResponseTotals(gctx, studentID)
		return err
	})
	g.Go(func() (err error) {
		out.TotalEjerciciosGenerados, err = s.stats.CountStudentExercises(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to gather student statistics", zap.String("estudiante_id", studentID), zap.Error(err))
		return nil, domain.NewInternalError("failed to gather statistics", err)
	}

	out.Incorrectas = out.TotalRespuestas - out.Correctas
	if out.TotalRespuestas > 0 {
		out.PorcentajeAcierto = math.Round(float64(out.Correctas)/float64(out.TotalRespuestas)*10000) / 100
	}
	out.TiempoPromedioMs = math.Round(out.TiempoPromedioMs)
	return &out, nil
}
