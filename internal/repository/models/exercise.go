package models

import (
	"database/sql"
	"time"

	"edu-perfil/internal/domain"
)

// Exercise is a row of ejercicios_generados.
type Exercise struct {
	EjercicioID        string                      `db:"ejercicio_id"`
	EstudianteID       string                      `db:"estudiante_id"`
	Curso              string                      `db:"curso"`
	Tipo               string                      `db:"tipo"`
	Nivel              string                      `db:"nivel"`
	Titulo             string                      `db:"titulo"`
	Enunciado          string                      `db:"enunciado"`
	Opciones           StringSlice                 `db:"opciones"`
	RespuestaCorrecta  string                      `db:"respuesta_correcta"`
	Explicacion        string                      `db:"explicacion"`
	Contexto           sql.NullString              `db:"contexto"`
	OperacionPrincipal sql.NullString              `db:"operacion_principal"`
	IncluyeVisual      bool                        `db:"incluye_visual"`
	PerfilUsado        JSON[domain.ProfileSummary] `db:"perfil_usado"`
	Usado              bool                        `db:"usado"`
	FechaUso           sql.NullTime                `db:"fecha_uso"`
	FechaCreacion      time.Time                   `db:"fecha_creacion"`
}

// Response is a row of respuestas.
type Response struct {
	RespuestaID           string                `db:"respuesta_id"`
	EstudianteID          string                `db:"estudiante_id"`
	EjercicioID           string                `db:"ejercicio_id"`
	SesionID              sql.NullString        `db:"sesion_id"`
	Curso                 string                `db:"curso"`
	RespuestaSeleccionada string                `db:"respuesta_seleccionada"`
	EsCorrecta            bool                  `db:"es_correcta"`
	TiempoRespuestaMs     int64                 `db:"tiempo_respuesta_ms"`
	EjercicioSnapshot     JSON[domain.Exercise] `db:"ejercicio_snapshot"`
	Dispositivo           sql.NullString        `db:"dispositivo"`
	IPAddress             sql.NullString        `db:"ip_address"`
	UserAgent             sql.NullString        `db:"user_agent"`
	FechaRespuesta        time.Time             `db:"fecha_respuesta"`
}

// Session is a row of sesiones.
type Session struct {
	SesionID              string       `db:"sesion_id"`
	EstudianteID          string       `db:"estudiante_id"`
	Curso                 string       `db:"curso"`
	CantidadEjercicios    int          `db:"cantidad_ejercicios"`
	EjerciciosCompletados int          `db:"ejercicios_completados"`
	Correctas             int          `db:"correctas"`
	Incorrectas           int          `db:"incorrectas"`
	TiempoTotalMs         int64        `db:"tiempo_total_ms"`
	PorcentajeAcierto     float64      `db:"porcentaje_acierto"`
	Estado                string       `db:"estado"`
	FechaInicio           time.Time    `db:"fecha_inicio"`
	FechaFin              sql.NullTime `db:"fecha_fin"`
}
