package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/repository/models"
)

const profileColumns = `id, estudiante_id, grado, estilo_aprendizaje, velocidad, atencion, interes,
	nivel_matematicas, nivel_lectura, motivacion, frustracion, trabajo, energia, nivel_riesgo,
	categoria_principal, recomendaciones, confianza_perfil, respuestas_originales, activo,
	fecha_creacion, fecha_actualizacion`

type sqlxProfileRepository struct {
	db DBTX
}

// NewProfileRepository returns a domain.ProfileRepository backed by perfiles.
func NewProfileRepository(db DBTX) domain.ProfileRepository {
	return &sqlxProfileRepository{db: db}
}

func (r *sqlxProfileRepository) GetActive(ctx context.Context, studentID string) (*domain.StoredProfile, error) {
	var m models.Profile
	query := `SELECT ` + profileColumns + ` FROM perfiles
	          WHERE estudiante_id = $1 AND activo = TRUE
	          ORDER BY fecha_creacion DESC LIMIT 1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active profile for %s: %w", studentID, err)
	}
	return toDomainProfile(&m), nil
}

func (r *sqlxProfileRepository) DeactivateAll(ctx context.Context, studentID string) error {
	query := `UPDATE perfiles SET activo = FALSE, fecha_actualizacion = $2
	          WHERE estudiante_id = $1 AND activo = TRUE`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, studentID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate profiles for %s: %w", studentID, err)
	}
	return nil
}

// Create inserts the profile and sets profile.ID from the generated key.
func (r *sqlxProfileRepository) Create(ctx context.Context, profile *domain.StoredProfile) error {
	now := time.Now()
	if profile.FechaCreacion.IsZero() {
		profile.FechaCreacion = now
	}
	if profile.FechaActualizacion.IsZero() {
		profile.FechaActualizacion = profile.FechaCreacion
	}
	m := fromDomainProfile(profile)

	query := `INSERT INTO perfiles (estudiante_id, grado, estilo_aprendizaje, velocidad, atencion, interes,
	            nivel_matematicas, nivel_lectura, motivacion, frustracion, trabajo, energia, nivel_riesgo,
	            categoria_principal, recomendaciones, confianza_perfil, respuestas_originales, activo,
	            fecha_creacion, fecha_actualizacion)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	          RETURNING id`
	var id int64
	err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query,
		m.EstudianteID, m.Grado, m.EstiloAprendizaje, m.Velocidad, m.Atencion, m.Interes,
		m.NivelMatematicas, m.NivelLectura, m.Motivacion, m.Frustracion, m.Trabajo, m.Energia, m.NivelRiesgo,
		m.CategoriaPrincipal, m.Recomendaciones, m.ConfianzaPerfil, m.RespuestasOriginales, m.Activo,
		m.FechaCreacion, m.FechaActualizacion)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	profile.ID = id
	return nil
}

func toDomainProfile(m *models.Profile) *domain.StoredProfile {
	if m == nil {
		return nil
	}
	return &domain.StoredProfile{
		ID: m.ID,
		LearningProfile: domain.LearningProfile{
			EstudianteID: m.EstudianteID,
			Grado:        domain.Grade(m.Grado),
			Traits: domain.Traits{
				EstiloAprendizaje: domain.LearningStyle(m.EstiloAprendizaje),
				Velocidad:         domain.Speed(m.Velocidad),
				Atencion:          domain.Band(m.Atencion),
				Interes:           domain.Interest(m.Interes),
				NivelMatematicas:  domain.MathLevel(m.NivelMatematicas),
				NivelLectura:      domain.ReadingLevel(m.NivelLectura),
				Motivacion:        domain.Band(m.Motivacion),
				Frustracion:       domain.Frustration(m.Frustracion),
				Trabajo:           domain.WorkMode(m.Trabajo),
				Energia:           domain.Energy(m.Energia),
			},
			NivelRiesgo:          domain.RiskLevel(m.NivelRiesgo),
			CategoriaPrincipal:   m.CategoriaPrincipal,
			Recomendaciones:      []string(m.Recomendaciones),
			ConfianzaPerfil:      m.ConfianzaPerfil,
			RespuestasOriginales: domain.SurveyAnswers(m.RespuestasOriginales),
		},
		Activo:             m.Activo,
		FechaCreacion:      m.FechaCreacion,
		FechaActualizacion: m.FechaActualizacion,
	}
}

func fromDomainProfile(p *domain.StoredProfile) *models.Profile {
	if p == nil {
		return nil
	}
	return &models.Profile{
		ID:                   p.ID,
		EstudianteID:         p.EstudianteID,
		Grado:                string(p.Grado),
		EstiloAprendizaje:    string(p.EstiloAprendizaje),
		Velocidad:            string(p.Velocidad),
		Atencion:             string(p.Atencion),
		Interes:              string(p.Interes),
		NivelMatematicas:     string(p.NivelMatematicas),
		NivelLectura:         string(p.NivelLectura),
		Motivacion:           string(p.Motivacion),
		Frustracion:          string(p.Frustracion),
		Trabajo:              string(p.Trabajo),
		Energia:              string(p.Energia),
		NivelRiesgo:          string(p.NivelRiesgo),
		CategoriaPrincipal:   p.CategoriaPrincipal,
		Recomendaciones:      models.StringSlice(p.Recomendaciones),
		ConfianzaPerfil:      p.ConfianzaPerfil,
		RespuestasOriginales: models.JSONMap(p.RespuestasOriginales),
		Activo:               p.Activo,
		FechaCreacion:        p.FechaCreacion,
		FechaActualizacion:   p.FechaActualizacion,
	}
}
