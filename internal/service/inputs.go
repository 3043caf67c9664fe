package service

import "edu-perfil/internal/domain"

// Inputs below are produced by validation.Validator; services trust them.

type ClassifyInput struct {
	StudentID string
	Grade     domain.Grade
	Answers   domain.SurveyAnswers
	Nombre    string
	Apellido  string
	Edad      *int
}

type GenerateInput struct {
	StudentID    string
	Course       domain.Course
	Quantity     int // 0 means the configured default
	SpecificType string
	ForcedLevel  domain.Level
}

type SaveAnswerInput struct {
	StudentID  string
	ExerciseID string
	SessionID  string
	Course     domain.Course
	Selected   string
	ElapsedMs  int64
	Device     string
	IPAddress  string
	UserAgent  string
}

type ValidateAnswerInput struct {
	ExerciseID string
	Selected   string
}

type StartSessionInput struct {
	StudentID string
	Course    domain.Course
	Planned   int
}
