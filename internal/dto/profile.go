package dto

import (
	"edu-perfil/internal/catalog"
	"edu-perfil/internal/domain"
)

// ClassifyRequest is the survey submission body.
type ClassifyRequest struct {
	EstudianteID string            `json:"estudiante_id"`
	Grado        string            `json:"grado"`
	Respuestas   map[string]string `json:"respuestas"`
	Nombre       string            `json:"nombre,omitempty"`
	Apellido     string            `json:"apellido,omitempty"`
	Edad         *int              `json:"edad,omitempty"`
}

type ClassifyResponse struct {
	Success bool                  `json:"success"`
	Mensaje string                `json:"mensaje"`
	Perfil  *domain.StoredProfile `json:"perfil"`
}

type ProfileResponse struct {
	Success bool                  `json:"success"`
	Perfil  *domain.StoredProfile `json:"perfil"`
}

type FormResponse struct {
	Success    bool          `json:"success"`
	Grado      domain.Grade  `json:"grado"`
	Formulario *catalog.Form `json:"formulario"`
}

type FormListResponse struct {
	Success bool           `json:"success"`
	Grados  []domain.Grade `json:"grados"`
}
