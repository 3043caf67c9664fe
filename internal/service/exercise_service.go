package service

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"edu-perfil/internal/config"
	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/exercisegen"
	"edu-perfil/internal/util"

	"go.uber.org/zap"
)

// ExerciseGenerator is satisfied by *exercisegen.Generator.
type ExerciseGenerator interface {
	Generate(ctx context.Context, req exercisegen.Request) ([]exercisegen.ParsedExercise, error)
}

// ExerciseService generates and stores exercises adapted to a profile.
type ExerciseService interface {
	Generate(ctx context.Context, in GenerateInput) (*dto.GenerateExercisesResponse, error)
}

type exerciseService struct {
	profiles  ProfileService
	generator ExerciseGenerator
	exercises domain.ExerciseRepository
	cfg       config.ExerciseConfig
	now       func() time.Time
	intn      func(n int) int
	newID     func(parts ...string) string
	logger    *zap.Logger
}

// ExerciseServiceOption overrides a collaborator, mostly for tests.
type ExerciseServiceOption func(*exerciseService)

func WithClock(now func() time.Time) ExerciseServiceOption {
	return func(s *exerciseService) { s.now = now }
}

func WithRandom(intn func(n int) int) ExerciseServiceOption {
	return func(s *exerciseService) { s.intn = intn }
}

func WithIDGenerator(newID func(parts ...string) string) ExerciseServiceOption {
	return func(s *exerciseService) { s.newID = newID }
}

func NewExerciseService(
	profiles ProfileService,
	generator ExerciseGenerator,
	exercises domain.ExerciseRepository,
	cfg config.ExerciseConfig,
	logger *zap.Logger,
	opts ...ExerciseServiceOption,
) ExerciseService {
	if cfg.DefaultQuantity <= 0 {
		cfg.DefaultQuantity = 3
	}
	if cfg.MaxQuantity <= 0 {
		cfg.MaxQuantity = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &exerciseService{
		profiles:  profiles,
		generator: generator,
		exercises: exercises,
		cfg:       cfg,
		now:       time.Now,
		intn:      rand.IntN,
		newID:     util.NewPrefixedID,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *exerciseService) quantity(requested int) int {
	if requested <= 0 {
		return s.cfg.DefaultQuantity
	}
	return min(requested, s.cfg.MaxQuantity)
}

func (s *exerciseService) Generate(ctx context.Context, in GenerateInput) (*dto.GenerateExercisesResponse, error) {
	start := s.now()
	quantity := s.quantity(in.Quantity)

	profile, err := s.profiles.GetActive(ctx, in.StudentID)
	if err != nil {
		return nil, err
	}

	level := exercisegen.DetermineLevel(profile.LearningProfile, in.Course, in.ForcedLevel)
	exerciseType := exercisegen.SelectType(in.Course, level, in.SpecificType, s.intn)

	s.logger.Info("Generating exercises",
		zap.String("estudiante_id", in.StudentID),
		zap.String("curso", string(in.Course)),
		zap.String("nivel", string(level)),
		zap.String("tipo", exerciseType),
		zap.Int("cantidad", quantity))

	parsed, err := s.generator.Generate(ctx, exercisegen.Request{
		Course:   in.Course,
		Quantity: quantity,
		Level:    level,
		Type:     exerciseType,
		Profile:  profile.LearningProfile,
	})
	if err != nil {
		return nil, err
	}

	summary := &domain.ProfileSummary{
		EstiloAprendizaje: profile.EstiloAprendizaje,
		Interes:           profile.Interes,
		NivelMatematicas:  profile.NivelMatematicas,
		NivelLectura:      profile.NivelLectura,
		Grado:             profile.Grado,
	}

	saved := make([]domain.Exercise, 0, len(parsed))
	for _, p := range parsed {
		e := s.buildExercise(in, level, exerciseType, summary, p)
		if err := s.exercises.Create(ctx, &e); err != nil {
			// one bad row does not discard the rest of the batch
			s.logger.Warn("Failed to store generated exercise", zap.String("ejercicio_id", e.ID), zap.Error(err))
			continue
		}
		saved = append(saved, e)
	}
	if len(saved) == 0 {
		return nil, domain.NewInternalError("failed to store generated exercises", nil)
	}

	elapsed := s.now().Sub(start).Seconds()
	return &dto.GenerateExercisesResponse{
		Success:                  true,
		Mensaje:                  fmt.Sprintf("%d ejercicio(s) generado(s) exitosamente", len(saved)),
		EstudianteID:             in.StudentID,
		Curso:                    in.Course,
		NivelDeterminado:         level,
		Tipo:                     exerciseType,
		CantidadSolicitada:       quantity,
		CantidadGenerada:         len(saved),
		Ejercicios:               saved,
		TiempoGeneracionSegundos: math.Round(elapsed*100) / 100,
	}, nil
}

func (s *exerciseService) buildExercise(in GenerateInput, level domain.Level, exerciseType string, summary *domain.ProfileSummary, p exercisegen.ParsedExercise) domain.Exercise {
	tipo := exerciseType
	if p.Tipo != "" {
		tipo = p.Tipo
	}
	nivel := level
	if l := domain.Level(strings.ToLower(p.Nivel)); l.Valid() {
		nivel = l
	}
	return domain.Exercise{
		ID:                 s.newID(string(in.Course), string(level)),
		EstudianteID:       in.StudentID,
		Curso:              in.Course,
		Tipo:               tipo,
		Nivel:              nivel,
		Titulo:             p.Titulo,
		Enunciado:          p.Enunciado,
		Opciones:           p.Opciones,
		RespuestaCorrecta:  p.RespuestaCorrecta,
		Explicacion:        p.Explicacion,
		Contexto:           p.Contexto,
		OperacionPrincipal: p.OperacionPrincipal,
		IncluyeVisual:      p.IncluyeVisual,
		PerfilUsado:        summary,
		FechaCreacion:      s.now(),
	}
}
