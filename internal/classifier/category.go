package classifier

import "edu-perfil/internal/domain"

// Category is one of the ten fixed profile categories.
type Category struct {
	Key   string
	Label string
}

var (
	CientificoResiliente  = Category{"cientifico_resiliente", "El Científico Resiliente"}
	ArtistaCreativo       = Category{"artista_creativo", "El Artista Creativo"}
	ExploradorKinestesico = Category{"explorador_kinestesico", "El Explorador Kinestésico"}
	EstrategaAnalitico    = Category{"estratega_analitico", "El Estratega Analítico"}
	LiderSocial           = Category{"lider_social", "El Líder Social"}
	PensadorSilencioso    = Category{"pensador_silencioso", "El Pensador Silencioso"}
	AprendizConstante     = Category{"aprendiz_constante", "El Aprendiz Constante"}
	DesafianteAudaz       = Category{"desafiante_audaz", "El Desafiante Audaz"}
	SonadorCreativo       = Category{"soñador_creativo", "El Soñador Creativo"}
	ObservadorReflexivo   = Category{"observador_reflexivo", "El Observador Reflexivo"}
)

// Categories lists every category in cascade order, fallback last.
var Categories = []Category{
	CientificoResiliente,
	ArtistaCreativo,
	ExploradorKinestesico,
	EstrategaAnalitico,
	LiderSocial,
	PensadorSilencioso,
	AprendizConstante,
	DesafianteAudaz,
	SonadorCreativo,
	ObservadorReflexivo,
}

type rule struct {
	match    func(domain.Traits) bool
	category Category
}

// Evaluated in order; the first match wins.
var cascade = []rule{
	{func(t domain.Traits) bool {
		return t.Interes == domain.InterestCientifico && t.Frustracion == domain.FrustrationResiliente
	}, CientificoResiliente},
	{func(t domain.Traits) bool {
		return t.Interes == domain.InterestArtistico && t.EstiloAprendizaje == domain.StyleVisual
	}, ArtistaCreativo},
	{func(t domain.Traits) bool {
		return t.EstiloAprendizaje == domain.StyleKinestesico
	}, ExploradorKinestesico},
	{func(t domain.Traits) bool {
		return t.Velocidad == domain.SpeedRapido && t.Trabajo == domain.WorkIndividual
	}, EstrategaAnalitico},
	{func(t domain.Traits) bool {
		return t.Trabajo == domain.WorkColaborativo && t.Interes == domain.InterestSocial
	}, LiderSocial},
	{func(t domain.Traits) bool {
		return t.Trabajo == domain.WorkIndividual && t.Motivacion == domain.BandAlta
	}, PensadorSilencioso},
	{func(t domain.Traits) bool {
		return t.Motivacion == domain.BandAlta && t.Frustracion == domain.FrustrationResiliente
	}, AprendizConstante},
	{func(t domain.Traits) bool {
		return t.Frustracion == domain.FrustrationBajaTolerancia && t.Motivacion == domain.BandAlta
	}, DesafianteAudaz},
	{func(t domain.Traits) bool {
		return t.Interes == domain.InterestArtistico
	}, SonadorCreativo},
}

// SelectCategory returns the first matching category of the cascade.
func SelectCategory(t domain.Traits) Category {
	for _, r := range cascade {
		if r.match(t) {
			return r.category
		}
	}
	return ObservadorReflexivo
}

// CategoryByLabel resolves a stored label back to its category.
func CategoryByLabel(label string) (Category, bool) {
	for _, c := range Categories {
		if c.Label == label {
			return c, true
		}
	}
	return Category{}, false
}
