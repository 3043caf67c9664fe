package domain

import (
	"context"
	"time"
)

// Grade is a school-year band.
type Grade string

const (
	Grade12 Grade = "1-2"
	Grade34 Grade = "3-4"
	Grade56 Grade = "5-6"
)

// Grades lists the supported bands in display order.
var Grades = []Grade{Grade12, Grade34, Grade56}

func (g Grade) Valid() bool {
	switch g {
	case Grade12, Grade34, Grade56:
		return true
	}
	return false
}

// SurveyAnswers maps a question id ("P1".."P10") to the chosen option letter.
type SurveyAnswers map[string]string

type LearningStyle string

const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditivo       LearningStyle = "auditivo"
	StyleKinestesico    LearningStyle = "kinestesico"
	StyleLectoescritura LearningStyle = "lectoescritura"
)

type Speed string

const (
	SpeedRapido   Speed = "rapido"
	SpeedModerado Speed = "moderado"
	SpeedLento    Speed = "lento"
	SpeedMuyLento Speed = "muy_lento"
)

// Band is shared by atencion and motivacion.
type Band string

const (
	BandAlta    Band = "alta"
	BandMedia   Band = "media"
	BandBaja    Band = "baja"
	BandMuyBaja Band = "muy_baja"
)

type Interest string

const (
	InterestCientifico Interest = "cientifico"
	InterestArtistico  Interest = "artistico"
	InterestDeportivo  Interest = "deportivo"
	InterestSocial     Interest = "social"
)

type MathLevel string

const (
	MathAvanzado      MathLevel = "avanzado"
	MathIntermedio    MathLevel = "intermedio"
	MathBasico        MathLevel = "basico"
	MathNecesitaApoyo MathLevel = "necesita_apoyo"
)

type ReadingLevel string

const (
	ReadingAvanzado     ReadingLevel = "avanzado"
	ReadingDesarrollado ReadingLevel = "desarrollado"
	ReadingEnDesarrollo ReadingLevel = "en_desarrollo"
	ReadingInicial      ReadingLevel = "inicial"
)

type Frustration string

const (
	FrustrationResiliente        Frustration = "resiliente"
	FrustrationModerado          Frustration = "moderado"
	FrustrationBajaTolerancia    Frustration = "baja_tolerancia"
	FrustrationMuyBajaTolerancia Frustration = "muy_baja_tolerancia"
)

type WorkMode string

const (
	WorkIndividual   WorkMode = "individual"
	WorkColaborativo WorkMode = "colaborativo"
	WorkMixto        WorkMode = "mixto"
	WorkDependeTarea WorkMode = "depende_tarea"
)

type Energy string

const (
	EnergyMatutino   Energy = "matutino"
	EnergyVespertino Energy = "vespertino"
	EnergyNocturno   Energy = "nocturno"
	EnergyConstante  Energy = "constante"
)

type RiskLevel string

const (
	RiskBajo  RiskLevel = "bajo"
	RiskMedio RiskLevel = "medio"
	RiskAlto  RiskLevel = "alto"
)

// Traits holds the ten values mapped one-to-one from the survey answers.
type Traits struct {
	EstiloAprendizaje LearningStyle `json:"estilo_aprendizaje"`
	Velocidad         Speed         `json:"velocidad"`
	Atencion          Band          `json:"atencion"`
	Interes           Interest      `json:"interes"`
	NivelMatematicas  MathLevel     `json:"nivel_matematicas"`
	NivelLectura      ReadingLevel  `json:"nivel_lectura"`
	Motivacion        Band          `json:"motivacion"`
	Frustracion       Frustration   `json:"frustracion"`
	Trabajo           WorkMode      `json:"trabajo"`
	Energia           Energy        `json:"energia"`
}

// LearningProfile is the classifier output.
type LearningProfile struct {
	EstudianteID string `json:"estudiante_id"`
	Grado        Grade  `json:"grado"`
	Traits
	NivelRiesgo          RiskLevel     `json:"nivel_riesgo"`
	CategoriaPrincipal   string        `json:"categoria_principal"`
	Recomendaciones      []string      `json:"recomendaciones"`
	ConfianzaPerfil      int           `json:"confianza_perfil"`
	RespuestasOriginales SurveyAnswers `json:"respuestas_originales"`
}

// StoredProfile is a persisted LearningProfile. Only one profile per student
// is Activo at a time.
type StoredProfile struct {
	ID int64 `json:"id"`
	LearningProfile
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// Student is the registry row a profile belongs to.
type Student struct {
	EstudianteID  string    `json:"estudiante_id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Grado         Grade     `json:"grado"`
	Edad          *int      `json:"edad,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// StudentRepository persists students.
type StudentRepository interface {
	// GetByIDForUpdate returns (nil, nil) when no student has the id. Inside a
	// transaction the row stays locked until commit or rollback.
	GetByIDForUpdate(ctx context.Context, studentID string) (*Student, error)
	Create(ctx context.Context, student *Student) error
}

// ProfileRepository persists learning profiles.
type ProfileRepository interface {
	// GetActive returns (nil, nil) when the student has no active profile.
	GetActive(ctx context.Context, studentID string) (*StoredProfile, error)
	DeactivateAll(ctx context.Context, studentID string) error
	Create(ctx context.Context, profile *StoredProfile) error
}

// TransactionManager runs fn in a single database transaction; repositories
// called with the context passed to fn join it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
