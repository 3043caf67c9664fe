package service

import (
	"context"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/util"

	"go.uber.org/zap"
)

// SessionService opens practice sessions that answers are counted against.
type SessionService interface {
	Start(ctx context.Context, in StartSessionInput) (*domain.Session, error)
}

type sessionService struct {
	sessions domain.SessionRepository
	now      func() time.Time
	logger   *zap.Logger
}

func NewSessionService(sessions domain.SessionRepository, now func() time.Time, logger *zap.Logger) SessionService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{sessions: sessions, now: now, logger: logger}
}

func (s *sessionService) Start(ctx context.Context, in StartSessionInput) (*domain.Session, error) {
	session := &domain.Session{
		SesionID:           util.NewPrefixedID("ses"),
		EstudianteID:       in.StudentID,
		Curso:              in.Course,
		CantidadEjercicios: in.Planned,
		Estado:             domain.SessionEnProgreso,
		FechaInicio:        s.now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.Error("Failed to start session", zap.String("estudiante_id", in.StudentID), zap.Error(err))
		return nil, domain.NewInternalError("failed to start session", err)
	}
	s.logger.Info("Session started",
		zap.String("sesion_id", session.SesionID),
		zap.String("estudiante_id", in.StudentID),
		zap.Int("cantidad_ejercicios", in.Planned))
	return session, nil
}
