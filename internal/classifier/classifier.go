// Package classifier turns a completed learning-style survey into a
// learning profile. It performs no I/O and is safe for concurrent use.
package classifier

import (
	"maps"

	"edu-perfil/internal/domain"
)

const totalQuestions = 10

// Classify maps the answers to a profile. It never fails: missing or
// unrecognized answers fall back to the per-question defaults. The grade is
// recorded on the profile but does not affect classification.
func Classify(studentID string, grade domain.Grade, answers domain.SurveyAnswers) domain.LearningProfile {
	traits := MapTraits(answers)
	risk := RiskLevelFor(RiskScore(traits))

	return domain.LearningProfile{
		EstudianteID:         studentID,
		Grado:                grade,
		Traits:               traits,
		NivelRiesgo:          risk,
		CategoriaPrincipal:   SelectCategory(traits).Label,
		Recomendaciones:      Recommendations(traits.EstiloAprendizaje, traits.Velocidad, risk),
		ConfianzaPerfil:      Confidence(answers),
		RespuestasOriginales: maps.Clone(answers),
	}
}

// Confidence is the percentage of the survey answered, capped at 100. Every
// key present counts as answered.
func Confidence(answers domain.SurveyAnswers) int {
	return min(len(answers)*100/totalQuestions, 100)
}
