package domain

import (
	"context"
	"time"
)

// Course is the subject an exercise belongs to.
type Course string

const (
	CourseMatematicas Course = "matematicas"
	CourseVerbal      Course = "verbal"
)

func (c Course) Valid() bool {
	return c == CourseMatematicas || c == CourseVerbal
}

// Level is the difficulty an exercise is generated at.
type Level string

const (
	LevelBasico     Level = "basico"
	LevelIntermedio Level = "intermedio"
	LevelAvanzado   Level = "avanzado"
)

func (l Level) Valid() bool {
	switch l {
	case LevelBasico, LevelIntermedio, LevelAvanzado:
		return true
	}
	return false
}

// Exercise is one generated multiple-choice item.
type Exercise struct {
	ID                 string          `json:"ejercicio_id"`
	EstudianteID       string          `json:"estudiante_id"`
	Curso              Course          `json:"curso"`
	Tipo               string          `json:"tipo"`
	Nivel              Level           `json:"nivel"`
	Titulo             string          `json:"titulo"`
	Enunciado          string          `json:"enunciado"`
	Opciones           []string        `json:"opciones"`
	RespuestaCorrecta  string          `json:"respuesta_correcta"`
	Explicacion        string          `json:"explicacion"`
	Contexto           string          `json:"contexto,omitempty"`
	OperacionPrincipal string          `json:"operacion_principal,omitempty"`
	IncluyeVisual      bool            `json:"incluye_visual"`
	PerfilUsado        *ProfileSummary `json:"perfil_usado,omitempty"`
	Usado              bool            `json:"usado"`
	FechaUso           *time.Time      `json:"fecha_uso,omitempty"`
	FechaCreacion      time.Time       `json:"fecha_creacion"`
}

// ProfileSummary is the slice of a profile recorded with each exercise.
type ProfileSummary struct {
	EstiloAprendizaje LearningStyle `json:"estilo_aprendizaje"`
	Interes           Interest      `json:"interes"`
	NivelMatematicas  MathLevel     `json:"nivel_matematicas"`
	NivelLectura      ReadingLevel  `json:"nivel_lectura"`
	Grado             Grade         `json:"grado"`
}

// ExerciseRepository persists generated exercises.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	// GetByID returns (nil, nil) when no exercise has the id.
	GetByID(ctx context.Context, exerciseID string) (*Exercise, error)
	MarkUsed(ctx context.Context, exerciseID string, at time.Time) error
}

// TextGenerator is the upstream AI collaborator. It returns the raw model
// text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
