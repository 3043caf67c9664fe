package dto

import "edu-perfil/internal/domain"

// SaveAnswerRequest records a student's answer.
type SaveAnswerRequest struct {
	EstudianteID          string `json:"estudiante_id"`
	EjercicioID           string `json:"ejercicio_id"`
	SesionID              string `json:"sesion_id,omitempty"`
	Curso                 string `json:"curso,omitempty"`
	RespuestaSeleccionada string `json:"respuesta_seleccionada"`
	TiempoRespuestaMs     int64  `json:"tiempo_respuesta_ms,omitempty"`
	Dispositivo           string `json:"dispositivo,omitempty"`
}

type SaveAnswerResponse struct {
	Success           bool                     `json:"success"`
	Mensaje           string                   `json:"mensaje"`
	Respuesta         *domain.ExerciseResponse `json:"respuesta"`
	EsCorrecta        bool                     `json:"es_correcta"`
	RespuestaCorrecta string                   `json:"respuesta_correcta"`
	Explicacion       string                   `json:"explicacion"`
	Sesion            *domain.Session          `json:"sesion,omitempty"`
}

// ValidateAnswerRequest checks an answer without recording it.
type ValidateAnswerRequest struct {
	EjercicioID string `json:"ejercicio_id"`
	Respuesta   string `json:"respuesta"`
}

type ValidateAnswerResponse struct {
	Success           bool   `json:"success"`
	Valida            bool   `json:"valida"`
	EsCorrecta        bool   `json:"es_correcta"`
	RespuestaCorrecta string `json:"respuesta_correcta"`
	Explicacion       string `json:"explicacion"`
}

// StartSessionRequest opens a practice session.
type StartSessionRequest struct {
	EstudianteID       string `json:"estudiante_id"`
	Curso              string `json:"curso"`
	CantidadEjercicios int    `json:"cantidad_ejercicios"`
}

type SessionResponse struct {
	Success bool            `json:"success"`
	Sesion  *domain.Session `json:"sesion"`
}

type GeneralStatsResponse struct {
	Success      bool                `json:"success"`
	Tipo         string              `json:"tipo"`
	Estadisticas domain.GeneralStats `json:"estadisticas"`
}

type StudentStatsResponse struct {
	Success      bool                `json:"success"`
	Tipo         string              `json:"tipo"`
	EstudianteID string              `json:"estudiante_id"`
	Estadisticas domain.StudentStats `json:"estadisticas"`
}
