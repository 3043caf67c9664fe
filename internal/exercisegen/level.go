package exercisegen

import "edu-perfil/internal/domain"

var levelByGrade = map[domain.Grade]domain.Level{
	domain.Grade12: domain.LevelBasico,
	domain.Grade34: domain.LevelIntermedio,
	domain.Grade56: domain.LevelAvanzado,
}

// DetermineLevel picks the difficulty for a course. A forced level wins;
// otherwise the student's skill in the course decides, and the grade band
// is the fallback.
func DetermineLevel(profile domain.LearningProfile, course domain.Course, forced domain.Level) domain.Level {
	if forced != "" {
		return forced
	}

	switch course {
	case domain.CourseMatematicas:
		switch profile.NivelMatematicas {
		case domain.MathAvanzado:
			return domain.LevelAvanzado
		case domain.MathNecesitaApoyo:
			return domain.LevelBasico
		case domain.MathIntermedio:
			return domain.LevelIntermedio
		}
	case domain.CourseVerbal:
		switch profile.NivelLectura {
		case domain.ReadingAvanzado:
			return domain.LevelAvanzado
		case domain.ReadingInicial:
			return domain.LevelBasico
		case domain.ReadingDesarrollado:
			return domain.LevelIntermedio
		}
	}

	if l, ok := levelByGrade[profile.Grado]; ok {
		return l
	}
	return domain.LevelIntermedio
}
