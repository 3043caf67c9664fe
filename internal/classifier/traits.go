package classifier

import "edu-perfil/internal/domain"

// Each table maps an option letter to a trait value. Letters outside the
// table resolve to the table default.
type table[T ~string] struct {
	byOption map[string]T
	def      T
}

func (t table[T]) lookup(option string) T {
	if v, ok := t.byOption[option]; ok {
		return v
	}
	return t.def
}

var (
	estiloTable = table[domain.LearningStyle]{
		byOption: map[string]domain.LearningStyle{
			"A": domain.StyleVisual,
			"B": domain.StyleAuditivo,
			"C": domain.StyleKinestesico,
			"D": domain.StyleLectoescritura,
		},
		def: domain.StyleVisual,
	}
	velocidadTable = table[domain.Speed]{
		byOption: map[string]domain.Speed{
			"A": domain.SpeedRapido,
			"B": domain.SpeedModerado,
			"C": domain.SpeedLento,
			"D": domain.SpeedMuyLento,
		},
		def: domain.SpeedModerado,
	}
	atencionTable = table[domain.Band]{
		byOption: map[string]domain.Band{
			"A": domain.BandAlta,
			"B": domain.BandMedia,
			"C": domain.BandBaja,
			"D": domain.BandMuyBaja,
		},
		def: domain.BandMedia,
	}
	interesTable = table[domain.Interest]{
		byOption: map[string]domain.Interest{
			"A": domain.InterestCientifico,
			"B": domain.InterestArtistico,
			"C": domain.InterestDeportivo,
			"D": domain.InterestSocial,
		},
		def: domain.InterestCientifico,
	}
	matematicasTable = table[domain.MathLevel]{
		byOption: map[string]domain.MathLevel{
			"A": domain.MathAvanzado,
			"B": domain.MathIntermedio,
			"C": domain.MathBasico,
			"D": domain.MathNecesitaApoyo,
		},
		def: domain.MathBasico,
	}
	lecturaTable = table[domain.ReadingLevel]{
		byOption: map[string]domain.ReadingLevel{
			"A": domain.ReadingAvanzado,
			"B": domain.ReadingDesarrollado,
			"C": domain.ReadingEnDesarrollo,
			"D": domain.ReadingInicial,
		},
		def: domain.ReadingEnDesarrollo,
	}
	motivacionTable = table[domain.Band]{
		byOption: map[string]domain.Band{
			"A": domain.BandAlta,
			"B": domain.BandMedia,
			"C": domain.BandBaja,
			"D": domain.BandMuyBaja,
		},
		def: domain.BandMedia,
	}
	frustracionTable = table[domain.Frustration]{
		byOption: map[string]domain.Frustration{
			"A": domain.FrustrationResiliente,
			"B": domain.FrustrationModerado,
			"C": domain.FrustrationBajaTolerancia,
			"D": domain.FrustrationMuyBajaTolerancia,
		},
		def: domain.FrustrationModerado,
	}
	trabajoTable = table[domain.WorkMode]{
		byOption: map[string]domain.WorkMode{
			"A": domain.WorkIndividual,
			"B": domain.WorkColaborativo,
			"C": domain.WorkMixto,
			"D": domain.WorkDependeTarea,
		},
		def: domain.WorkMixto,
	}
	energiaTable = table[domain.Energy]{
		byOption: map[string]domain.Energy{
			"A": domain.EnergyMatutino,
			"B": domain.EnergyVespertino,
			"C": domain.EnergyNocturno,
			"D": domain.EnergyConstante,
		},
		def: domain.EnergyMatutino,
	}
)

// MapTraits translates each answer through its question's table.
func MapTraits(answers domain.SurveyAnswers) domain.Traits {
	return domain.Traits{
		EstiloAprendizaje: estiloTable.lookup(answers["P1"]),
		Velocidad:         velocidadTable.lookup(answers["P2"]),
		Atencion:          atencionTable.lookup(answers["P3"]),
		Interes:           interesTable.lookup(answers["P4"]),
		NivelMatematicas:  matematicasTable.lookup(answers["P5"]),
		NivelLectura:      lecturaTable.lookup(answers["P6"]),
		Motivacion:        motivacionTable.lookup(answers["P7"]),
		Frustracion:       frustracionTable.lookup(answers["P8"]),
		Trabajo:           trabajoTable.lookup(answers["P9"]),
		Energia:           energiaTable.lookup(answers["P10"]),
	}
}
