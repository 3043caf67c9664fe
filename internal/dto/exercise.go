package dto

import "edu-perfil/internal/domain"

// GenerateExercisesRequest asks for AI exercises for a student.
type GenerateExercisesRequest struct {
	EstudianteID   string `json:"estudiante_id"`
	Curso          string `json:"curso"`
	Cantidad       int    `json:"cantidad,omitempty"`
	TipoEspecifico string `json:"tipo_especifico,omitempty"`
	ForzarNivel    string `json:"forzar_nivel,omitempty"`
}

type GenerateExercisesResponse struct {
	Success                  bool              `json:"success"`
	Mensaje                  string            `json:"mensaje"`
	EstudianteID             string            `json:"estudiante_id"`
	Curso                    domain.Course     `json:"curso"`
	NivelDeterminado         domain.Level      `json:"nivel_determinado"`
	Tipo                     string            `json:"tipo"`
	CantidadSolicitada       int               `json:"cantidad_solicitada"`
	CantidadGenerada         int               `json:"cantidad_generada"`
	Ejercicios               []domain.Exercise `json:"ejercicios"`
	TiempoGeneracionSegundos float64           `json:"tiempo_generacion_segundos"`
}
