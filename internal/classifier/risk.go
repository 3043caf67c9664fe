package classifier

import "edu-perfil/internal/domain"

// Risk thresholds. These are tuning constants carried over unchanged; they
// are not derived from the weights below.
const (
	riskAltoThreshold  = 7
	riskMedioThreshold = 4
)

// RiskScore sums the weighted risk conditions over the traits.
func RiskScore(t domain.Traits) int {
	score := 0
	score += bandWeight(t.Atencion)
	score += bandWeight(t.Motivacion)

	switch t.Frustracion {
	case domain.FrustrationBajaTolerancia:
		score += 2
	case domain.FrustrationMuyBajaTolerancia:
		score += 3
	}
	if t.NivelMatematicas == domain.MathNecesitaApoyo {
		score += 2
	}
	if t.NivelLectura == domain.ReadingInicial {
		score += 2
	}
	return score
}

func bandWeight(b domain.Band) int {
	switch b {
	case domain.BandBaja:
		return 2
	case domain.BandMuyBaja:
		return 3
	}
	return 0
}

// RiskLevelFor thresholds a risk score.
func RiskLevelFor(score int) domain.RiskLevel {
	switch {
	case score >= riskAltoThreshold:
		return domain.RiskAlto
	case score >= riskMedioThreshold:
		return domain.RiskMedio
	default:
		return domain.RiskBajo
	}
}
