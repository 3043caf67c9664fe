package models

import "time"

// Profile is a row of perfiles.
type Profile struct {
	ID                   int64       `db:"id"`
	EstudianteID         string      `db:"estudiante_id"`
	Grado                string      `db:"grado"`
	EstiloAprendizaje    string      `db:"estilo_aprendizaje"`
	Velocidad            string      `db:"velocidad"`
	Atencion             string      `db:"atencion"`
	Interes              string      `db:"interes"`
	NivelMatematicas     string      `db:"nivel_matematicas"`
	NivelLectura         string      `db:"nivel_lectura"`
	Motivacion           string      `db:"motivacion"`
	Frustracion          string      `db:"frustracion"`
	Trabajo              string      `db:"trabajo"`
	Energia              string      `db:"energia"`
	NivelRiesgo          string      `db:"nivel_riesgo"`
	CategoriaPrincipal   string      `db:"categoria_principal"`
	Recomendaciones      StringSlice `db:"recomendaciones"`
	ConfianzaPerfil      int         `db:"confianza_perfil"`
	RespuestasOriginales JSONMap     `db:"respuestas_originales"`
	Activo               bool        `db:"activo"`
	FechaCreacion        time.Time   `db:"fecha_creacion"`
	FechaActualizacion   time.Time   `db:"fecha_actualizacion"`
}
