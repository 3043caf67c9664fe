package exercisegen

import (
	"strconv"
	"strings"

	"edu-perfil/internal/domain"
)

const defaultContext = "vida cotidiana"

var contextByInterest = map[domain.Interest]string{
	domain.InterestCientifico: "ciencia, experimentos, naturaleza",
	domain.InterestArtistico:  "arte, música, creatividad",
	domain.InterestDeportivo:  "deportes, juegos, actividad física",
	domain.InterestSocial:     "amigos, familia, comunidad",
}

// ContextFor returns the theme exercises are framed in for an interest.
func ContextFor(interest domain.Interest) string {
	if c, ok := contextByInterest[interest]; ok {
		return c
	}
	return defaultContext
}

const mathPrompt = `Eres un experto en educación primaria especializado en matemáticas.
Genera {cantidad} ejercicio(s) de matemáticas.

NIVEL: {nivel}
TIPO: {tipo}
ESTILO DE APRENDIZAJE: {estilo}
CONTEXTO PREFERIDO: {contexto}

Responde ÚNICAMENTE con JSON válido con esta forma:
{"ejercicios":[{"titulo":"...","enunciado":"...","opciones":["A) ...","B) ...","C) ...","D) ..."],"respuesta_correcta":"A","explicacion":"...","tipo":"{tipo}","nivel":"{nivel}","operacion_principal":"...","contexto":"{contexto}","incluye_visual":false}]}

Solo UNA opción debe ser correcta y respuesta_correcta es su letra.
Si el estilo es "visual", incluye descripciones visuales.
`

const verbalPrompt = `Eres un experto en educación primaria especializado en razonamiento verbal.
Genera {cantidad} ejercicio(s) de razonamiento verbal.

NIVEL: {nivel}
TIPO: {tipo}
ESTILO DE APRENDIZAJE: {estilo}
CONTEXTO PREFERIDO: {contexto}

Responde ÚNICAMENTE con JSON válido con esta forma:
{"ejercicios":[{"titulo":"...","enunciado":"...","opciones":["A) ...","B) ...","C) ...","D) ..."],"respuesta_correcta":"A","explicacion":"...","tipo":"{tipo}","nivel":"{nivel}","contexto":"{contexto}","incluye_visual":false}]}

Solo UNA opción debe ser correcta y respuesta_correcta es su letra.
`

// BuildPrompt fills the course template for one generation request.
func BuildPrompt(course domain.Course, quantity int, level domain.Level, exerciseType string, profile domain.LearningProfile) string {
	tmpl := verbalPrompt
	if course == domain.CourseMatematicas {
		tmpl = mathPrompt
	}

	return strings.NewReplacer(
		"{cantidad}", strconv.Itoa(quantity),
		"{nivel}", string(level),
		"{tipo}", exerciseType,
		"{estilo}", string(profile.EstiloAprendizaje),
		"{contexto}", ContextFor(profile.Interes),
	).Replace(tmpl)
}
