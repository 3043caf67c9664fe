package exercisegen

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"edu-perfil/internal/domain"
	"edu-perfil/internal/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validOutput = `{"ejercicios":[
 {"titulo":"Suma de manzanas","enunciado":"Ana tiene 2 manzanas y recibe 3. ¿Cuántas tiene?","opciones":["A) 4","B) 5","C) 6","D) 7"],"respuesta_correcta":"B","explicacion":"2 + 3 = 5","tipo":"suma","nivel":"basico","operacion_principal":"suma","contexto":"naturaleza","incluye_visual":false},
 {"titulo":"Resta","enunciado":"5 - 1","opciones":["A) 4","B) 3"],"respuesta_correcta":"A","explicacion":"5 - 1 = 4"}
]}`

func profileWith(grade domain.Grade, math domain.MathLevel, reading domain.ReadingLevel) domain.LearningProfile {
	p := domain.LearningProfile{EstudianteID: "EST1", Grado: grade}
	p.NivelMatematicas = math
	p.NivelLectura = reading
	p.EstiloAprendizaje = domain.StyleVisual
	p.Interes = domain.InterestCientifico
	return p
}

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.LearningProfile
		course  domain.Course
		forced  domain.Level
		want    domain.Level
	}{
		{"forced wins", profileWith(domain.Grade12, domain.MathAvanzado, ""), domain.CourseMatematicas, domain.LevelBasico, domain.LevelBasico},
		{"math avanzado", profileWith(domain.Grade12, domain.MathAvanzado, ""), domain.CourseMatematicas, "", domain.LevelAvanzado},
		{"math necesita apoyo", profileWith(domain.Grade56, domain.MathNecesitaApoyo, ""), domain.CourseMatematicas, "", domain.LevelBasico},
		{"math intermedio", profileWith(domain.Grade12, domain.MathIntermedio, ""), domain.CourseMatematicas, "", domain.LevelIntermedio},
		{"math basico falls to grade 5-6", profileWith(domain.Grade56, domain.MathBasico, ""), domain.CourseMatematicas, "", domain.LevelAvanzado},
		{"math basico falls to grade 1-2", profileWith(domain.Grade12, domain.MathBasico, ""), domain.CourseMatematicas, "", domain.LevelBasico},
		{"reading avanzado", profileWith(domain.Grade12, "", domain.ReadingAvanzado), domain.CourseVerbal, "", domain.LevelAvanzado},
		{"reading inicial", profileWith(domain.Grade56, "", domain.ReadingInicial), domain.CourseVerbal, "", domain.LevelBasico},
		{"reading desarrollado", profileWith(domain.Grade56, "", domain.ReadingDesarrollado), domain.CourseVerbal, "", domain.LevelIntermedio},
		{"reading en desarrollo uses grade", profileWith(domain.Grade34, "", domain.ReadingEnDesarrollo), domain.CourseVerbal, "", domain.LevelIntermedio},
		{"verbal ignores math level", profileWith(domain.Grade12, domain.MathAvanzado, domain.ReadingEnDesarrollo), domain.CourseVerbal, "", domain.LevelBasico},
		{"unknown grade", profileWith("", domain.MathBasico, ""), domain.CourseMatematicas, "", domain.LevelIntermedio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineLevel(tt.profile, tt.course, tt.forced))
		})
	}
}

func TestSelectType(t *testing.T) {
	first := func(int) int { return 0 }
	last := func(n int) int { return n - 1 }

	assert.Equal(t, "fracciones", SelectType(domain.CourseMatematicas, domain.LevelBasico, "fracciones", first))
	assert.Equal(t, "suma", SelectType(domain.CourseMatematicas, domain.LevelBasico, "", first))
	assert.Equal(t, "patrones", SelectType(domain.CourseMatematicas, domain.LevelBasico, "", last))
	assert.Equal(t, "conectores_logicos", SelectType(domain.CourseVerbal, domain.LevelAvanzado, "", last))
	assert.Equal(t, "termino_excluido", SelectType(domain.CourseVerbal, domain.LevelIntermedio, "", first))

	// levels without a type list
	assert.Equal(t, "suma", SelectType(domain.CourseMatematicas, domain.Level("experto"), "", first))
	assert.Equal(t, "sinonimos", SelectType(domain.CourseVerbal, domain.Level("experto"), "", first))
}

func TestContextFor(t *testing.T) {
	assert.Equal(t, "ciencia, experimentos, naturaleza", ContextFor(domain.InterestCientifico))
	assert.Equal(t, "arte, música, creatividad", ContextFor(domain.InterestArtistico))
	assert.Equal(t, "deportes, juegos, actividad física", ContextFor(domain.InterestDeportivo))
	assert.Equal(t, "amigos, familia, comunidad", ContextFor(domain.InterestSocial))
	assert.Equal(t, "vida cotidiana", ContextFor(domain.Interest("")))
}

func TestBuildPrompt(t *testing.T) {
	p := profileWith(domain.Grade34, domain.MathIntermedio, domain.ReadingDesarrollado)

	prompt := BuildPrompt(domain.CourseMatematicas, 4, domain.LevelIntermedio, "fracciones", p)
	assert.Contains(t, prompt, "matemáticas")
	assert.Contains(t, prompt, "Genera 4 ejercicio(s)")
	assert.Contains(t, prompt, "NIVEL: intermedio")
	assert.Contains(t, prompt, "TIPO: fracciones")
	assert.Contains(t, prompt, "ESTILO DE APRENDIZAJE: visual")
	assert.Contains(t, prompt, "CONTEXTO PREFERIDO: ciencia, experimentos, naturaleza")
	assert.NotContains(t, prompt, "{cantidad}")

	verbal := BuildPrompt(domain.CourseVerbal, 1, domain.LevelBasico, "sinonimos", p)
	assert.Contains(t, verbal, "razonamiento verbal")
	assert.NotContains(t, verbal, "{tipo}")
}

func TestParser_Parse(t *testing.T) {
	parser, err := NewParser()
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		exercises, err := parser.Parse(validOutput)
		require.NoError(t, err)
		require.Len(t, exercises, 2)
		assert.Equal(t, "B", exercises[0].RespuestaCorrecta)
		assert.Equal(t, "suma", exercises[0].OperacionPrincipal)
		assert.Len(t, exercises[1].Opciones, 2)
	})

	t.Run("markdown fence", func(t *testing.T) {
		exercises, err := parser.Parse("```json\n" + validOutput + "\n```")
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
	})

	t.Run("surrounding prose", func(t *testing.T) {
		exercises, err := parser.Parse("Aquí están los ejercicios:\n" + validOutput + "\n¡Suerte!")
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
	})

	invalid := map[string]string{
		"not json":            "lo siento, no puedo",
		"broken json":         `{"ejercicios":[{"titulo":"x"`,
		"missing ejercicios":  `{"items":[]}`,
		"empty list":          `{"ejercicios":[]}`,
		"missing key":         `{"ejercicios":[{"titulo":"t","enunciado":"e","opciones":["A) 1"],"explicacion":"x"}]}`,
		"empty options":       `{"ejercicios":[{"titulo":"t","enunciado":"e","opciones":[],"respuesta_correcta":"A","explicacion":"x"}]}`,
		"not a letter":        `{"ejercicios":[{"titulo":"t","enunciado":"e","opciones":["A) 1"],"respuesta_correcta":"1","explicacion":"x"}]}`,
		"two letters":         `{"ejercicios":[{"titulo":"t","enunciado":"e","opciones":["A) 1","B) 2"],"respuesta_correcta":"AB","explicacion":"x"}]}`,
		"letter out of range": `{"ejercicios":[{"titulo":"t","enunciado":"e","opciones":["A) 1","B) 2"],"respuesta_correcta":"C","explicacion":"x"}]}`,
	}
	for name, raw := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(raw)
			var invalidErr *InvalidOutputError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, raw, invalidErr.Raw)
		})
	}
}

type mockTextGenerator struct {
	mock.Mock
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockTextGenerator) Model() string { return "mock-model" }

type recordingSleeper struct {
	waits []time.Duration
}

func (r *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func newTestGenerator(t *testing.T, text domain.TextGenerator) (*Generator, *recordingSleeper) {
	t.Helper()
	parser, err := NewParser()
	require.NoError(t, err)
	sleeper := &recordingSleeper{}
	policy := retry.Default()
	policy.Sleep = sleeper.Sleep
	return NewGenerator(text, parser, policy, nil), sleeper
}

func testRequest() Request {
	return Request{
		Course:   domain.CourseMatematicas,
		Quantity: 3,
		Level:    domain.LevelBasico,
		Type:     "suma",
		Profile:  profileWith(domain.Grade12, domain.MathBasico, domain.ReadingEnDesarrollo),
	}
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt succeeds", func(t *testing.T) {
		text := new(mockTextGenerator)
		text.On("Generate", ctx, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "TIPO: suma")
		})).Return(validOutput, nil).Once()

		g, sleeper := newTestGenerator(t, text)
		exercises, err := g.Generate(ctx, testRequest())
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
		assert.Empty(t, sleeper.waits)
		text.AssertExpectations(t)
	})

	t.Run("malformed output is retried", func(t *testing.T) {
		text := new(mockTextGenerator)
		text.On("Generate", ctx, mock.Anything).Return(`{"ejercicios": "no"}`, nil).Once()
		text.On("Generate", ctx, mock.Anything).Return(validOutput, nil).Once()

		g, sleeper := newTestGenerator(t, text)
		exercises, err := g.Generate(ctx, testRequest())
		require.NoError(t, err)
		assert.Len(t, exercises, 2)
		assert.Equal(t, []time.Duration{time.Second}, sleeper.waits)
		text.AssertExpectations(t)
	})

	t.Run("exhaustion surfaces upstream failure", func(t *testing.T) {
		text := new(mockTextGenerator)
		text.On("Generate", ctx, mock.Anything).Return("", errors.New("gemini returned status 503")).Twice()
		text.On("Generate", ctx, mock.Anything).Return("not json at all", nil).Once()

		g, sleeper := newTestGenerator(t, text)
		_, err := g.Generate(ctx, testRequest())

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUpstreamFailure, domainErr.Code)
		assert.Contains(t, domainErr.Message, "invalid model output")
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeper.waits)
		text.AssertNumberOfCalls(t, "Generate", 3)
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		text := new(mockTextGenerator)
		text.On("Generate", ctx, mock.Anything).Return("", retry.Permanent(errors.New("invalid api key"))).Once()

		g, sleeper := newTestGenerator(t, text)
		_, err := g.Generate(ctx, testRequest())

		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUpstreamFailure, domainErr.Code)
		assert.Contains(t, domainErr.Message, "invalid api key")
		assert.Empty(t, sleeper.waits)
		text.AssertNumberOfCalls(t, "Generate", 1)
	})

	t.Run("output is capped to the requested quantity", func(t *testing.T) {
		text := new(mockTextGenerator)
		text.On("Generate", ctx, mock.Anything).Return(validOutput, nil).Once()

		g, _ := newTestGenerator(t, text)
		req := testRequest()
		req.Quantity = 1
		exercises, err := g.Generate(ctx, req)
		require.NoError(t, err)
		assert.Len(t, exercises, 1)
	})
}
