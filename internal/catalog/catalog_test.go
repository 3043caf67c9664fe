package catalog

import (
	"strconv"
	"testing"

	"edu-perfil/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedForms(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, domain.Grades, c.Grades())
	for _, g := range domain.Grades {
		f, ok := c.Form(g)
		require.True(t, ok, "grade %s", g)
		require.Len(t, f.Preguntas, 10)
		for i, q := range f.Preguntas {
			assert.Equal(t, "P"+strconv.Itoa(i+1), q.ID)
			assert.Len(t, q.Opciones, 4)
			assert.Equal(t, "A", q.Opciones[0].ID)
		}
	}
}

func TestMissing(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	answers := domain.SurveyAnswers{"P1": "A", "P2": "B", "P4": "", "P10": "D"}
	assert.Equal(t, []string{"P3", "P4", "P5", "P6", "P7", "P8", "P9"}, c.Missing(domain.Grade12, answers))
	assert.Nil(t, c.Missing(domain.Grade("9-10"), answers))
}

func TestParse_RejectsIncompleteCatalog(t *testing.T) {
	_, err := Parse([]byte(`{"formularios":{"1-2":{"nombre":"x","preguntas":[{"id":"P1"}]}}}`))
	assert.ErrorContains(t, err, "no form for grade 3-4")

	_, err = Parse([]byte(`not json`))
	assert.Error(t, err)
}

