package exercisegen

import "edu-perfil/internal/domain"

var typesByCourse = map[domain.Course]map[domain.Level][]string{
	domain.CourseMatematicas: {
		domain.LevelBasico:     {"suma", "resta", "conteo", "comparacion", "figuras", "patrones"},
		domain.LevelIntermedio: {"multiplicacion", "division", "fracciones", "geometria", "problemas_mixtos"},
		domain.LevelAvanzado:   {"operaciones_combinadas", "porcentajes", "geometria_avanzada", "proporciones"},
	},
	domain.CourseVerbal: {
		domain.LevelBasico:     {"sinonimos", "antonimos", "categorias", "completar", "analogias"},
		domain.LevelIntermedio: {"termino_excluido", "comprension", "oraciones_incompletas"},
		domain.LevelAvanzado:   {"comprension_inferencial", "analogias_complejas", "plan_de_redaccion", "conectores_logicos"},
	},
}

// TypesFor lists the exercise types available for a course and level.
func TypesFor(course domain.Course, level domain.Level) []string {
	return typesByCourse[course][level]
}

// SelectType returns specific when set, otherwise a random type for the
// course and level. intn must return a value in [0, n).
func SelectType(course domain.Course, level domain.Level, specific string, intn func(n int) int) string {
	if specific != "" {
		return specific
	}

	types := TypesFor(course, level)
	if len(types) == 0 {
		if course == domain.CourseMatematicas {
			return "suma"
		}
		return "sinonimos"
	}
	return types[intn(len(types))]
}
