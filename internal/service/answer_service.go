package service

import (
	"context"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/dto"
	"edu-perfil/internal/util"

	"go.uber.org/zap"
)

// AnswerService records and checks answers to generated exercises.
type AnswerService interface {
	Save(ctx context.Context, in SaveAnswerInput) (*dto.SaveAnswerResponse, error)
	Validate(ctx context.Context, in ValidateAnswerInput) (*dto.ValidateAnswerResponse, error)
}

type answerService struct {
	exercises domain.ExerciseRepository
	responses domain.ResponseRepository
	sessions  domain.SessionRepository
	tx        domain.TransactionManager
	now       func() time.Time
	newID     func(parts ...string) string
	logger    *zap.Logger
}

func NewAnswerService(
	exercises domain.ExerciseRepository,
	responses domain.ResponseRepository,
	sessions domain.SessionRepository,
	tx domain.TransactionManager,
	now func() time.Time,
	logger *zap.Logger,
) AnswerService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &answerService{
		exercises: exercises,
		responses: responses,
		sessions:  sessions,
		tx:        tx,
		now:       now,
		newID:     util.NewPrefixedID,
		logger:    logger,
	}
}

func (s *answerService) loadExercise(ctx context.Context, exerciseID string) (*domain.Exercise, error) {
	exercise, err := s.exercises.GetByID(ctx, exerciseID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load exercise", err)
	}
	if exercise == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Ejercicio no encontrado: %s", exerciseID))
	}
	return exercise, nil
}

// Save stores the answer, folds it into the session counters when the
// session exists and marks the exercise as used. The three writes share one
// transaction, and the session row stays locked from read to update so
// concurrent answers to the same session cannot overwrite each other.
func (s *answerService) Save(ctx context.Context, in SaveAnswerInput) (*dto.SaveAnswerResponse, error) {
	exercise, err := s.loadExercise(ctx, in.ExerciseID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	correct := in.Selected == exercise.RespuestaCorrecta
	course := in.Course
	if course == "" {
		course = exercise.Curso
	}
	response := &domain.ExerciseResponse{
		RespuestaID:           s.newID("resp"),
		EstudianteID:          in.StudentID,
		EjercicioID:           in.ExerciseID,
		SesionID:              in.SessionID,
		Curso:                 course,
		RespuestaSeleccionada: in.Selected,
		EsCorrecta:            correct,
		TiempoRespuestaMs:     in.ElapsedMs,
		EjercicioSnapshot:     exercise,
		Dispositivo:           in.Device,
		IPAddress:             in.IPAddress,
		UserAgent:             in.UserAgent,
		FechaRespuesta:        now,
	}

	var session *domain.Session
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.responses.Create(ctx, response); err != nil {
			return err
		}
		if in.SessionID != "" {
			found, err := s.sessions.GetByIDForUpdate(ctx, in.SessionID)
			if err != nil {
				return err
			}
			if found != nil {
				found.RecordAnswer(correct, in.ElapsedMs, now)
				if err := s.sessions.Update(ctx, found); err != nil {
					return err
				}
				session = found
			} else {
				s.logger.Warn("Answer references unknown session", zap.String("sesion_id", in.SessionID))
			}
		}
		return s.exercises.MarkUsed(ctx, in.ExerciseID, now)
	})
	if err != nil {
		s.logger.Error("Failed to save answer",
			zap.String("estudiante_id", in.StudentID),
			zap.String("ejercicio_id", in.ExerciseID),
			zap.Error(err))
		return nil, domain.NewInternalError("failed to save answer", err)
	}

	s.logger.Info("Answer saved",
		zap.String("respuesta_id", response.RespuestaID),
		zap.String("estudiante_id", in.StudentID),
		zap.Bool("es_correcta", correct))

	return &dto.SaveAnswerResponse{
		Success:           true,
		Mensaje:           "Respuesta guardada exitosamente",
		Respuesta:         response,
		EsCorrecta:        correct,
		RespuestaCorrecta: exercise.RespuestaCorrecta,
		Explicacion:       exercise.Explicacion,
		Sesion:            session,
	}, nil
}

// Validate reports whether the answer is correct without recording it.
func (s *answerService) Validate(ctx context.Context, in ValidateAnswerInput) (*dto.ValidateAnswerResponse, error) {
	exercise, err := s.loadExercise(ctx, in.ExerciseID)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateAnswerResponse{
		Success:           true,
		Valida:            true,
		EsCorrecta:        in.Selected == exercise.RespuestaCorrecta,
		RespuestaCorrecta: exercise.RespuestaCorrecta,
		Explicacion:       exercise.Explicacion,
	}, nil
}
