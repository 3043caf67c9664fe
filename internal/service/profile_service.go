package service

import (
	"context"
	"fmt"
	"time"

	"edu-perfil/internal/classifier"
	"edu-perfil/internal/domain"

	"go.uber.org/zap"
)

// ProfileService classifies survey answers and serves active profiles.
type ProfileService interface {
	Classify(ctx context.Context, in ClassifyInput) (*domain.StoredProfile, error)
	GetActive(ctx context.Context, studentID string) (*domain.StoredProfile, error)
}

type profileService struct {
	students domain.StudentRepository
	profiles domain.ProfileRepository
	tx       domain.TransactionManager
	cache    *ProfileCache
	now      func() time.Time
	logger   *zap.Logger
}

func NewProfileService(
	students domain.StudentRepository,
	profiles domain.ProfileRepository,
	tx domain.TransactionManager,
	cache *ProfileCache,
	now func() time.Time,
	logger *zap.Logger,
) ProfileService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &profileService{students: students, profiles: profiles, tx: tx, cache: cache, now: now, logger: logger}
}

// Classify registers the student if needed and stores the new profile as the
// only active one, all in one transaction.
func (s *profileService) Classify(ctx context.Context, in ClassifyInput) (*domain.StoredProfile, error) {
	profile := classifier.Classify(in.StudentID, in.Grade, in.Answers)
	now := s.now()
	stored := &domain.StoredProfile{
		LearningProfile:    profile,
		Activo:             true,
		FechaCreacion:      now,
		FechaActualizacion: now,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		// The student row lock serializes classifications of one student, so
		// only one of them can hold the active profile slot at a time.
		student, err := s.students.GetByIDForUpdate(ctx, in.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			err := s.students.Create(ctx, &domain.Student{
				EstudianteID:  in.StudentID,
				Nombre:        in.Nombre,
				Apellido:      in.Apellido,
				Grado:         in.Grade,
				Edad:          in.Edad,
				FechaRegistro: now,
			})
			if err != nil {
				return err
			}
			// a concurrent request may have inserted it first
			if _, err := s.students.GetByIDForUpdate(ctx, in.StudentID); err != nil {
				return err
			}
		}
		if err := s.profiles.DeactivateAll(ctx, in.StudentID); err != nil {
			return err
		}
		return s.profiles.Create(ctx, stored)
	})
	if err != nil {
		s.logger.Error("Failed to store profile", zap.String("estudiante_id", in.StudentID), zap.Error(err))
		return nil, domain.NewInternalError("failed to store profile", err)
	}

	s.cache.Invalidate(ctx, in.StudentID)
	s.logger.Info("Profile classified",
		zap.String("estudiante_id", in.StudentID),
		zap.String("categoria", stored.CategoriaPrincipal),
		zap.String("riesgo", string(stored.NivelRiesgo)),
		zap.Int("confianza", stored.ConfianzaPerfil))
	return stored, nil
}

func (s *profileService) GetActive(ctx context.Context, studentID string) (*domain.StoredProfile, error) {
	p, err := s.cache.GetOrLoad(ctx, studentID, func(ctx context.Context) (*domain.StoredProfile, error) {
		return s.profiles.GetActive(ctx, studentID)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to load profile", err)
	}
	if p == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No se encontró perfil activo para estudiante: %s", studentID))
	}
	return p, nil
}
