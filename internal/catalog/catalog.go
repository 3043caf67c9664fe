// Package catalog serves the survey forms shown to students, one per grade
// band. The forms are compiled into the binary.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"edu-perfil/internal/domain"

	"github.com/samber/lo"
)

//go:embed formularios.json
var formsJSON []byte

type Option struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Texto string `json:"texto"`
	Valor string `json:"valor"`
}

type Question struct {
	ID        string   `json:"id"`
	Pregunta  string   `json:"pregunta"`
	Categoria string   `json:"categoria"`
	Opciones  []Option `json:"opciones"`
}

type Form struct {
	Nombre          string     `json:"nombre"`
	RangoEdad       string     `json:"rango_edad"`
	Caracteristicas []string   `json:"caracteristicas"`
	Preguntas       []Question `json:"preguntas"`
}

// Catalog holds the parsed forms keyed by grade band.
type Catalog struct {
	forms map[domain.Grade]*Form
}

// Load parses the embedded forms.
func Load() (*Catalog, error) {
	return Parse(formsJSON)
}

// Parse builds a Catalog from a formularios document. Every supported grade
// must have a form.
func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Formularios map[domain.Grade]*Form `json:"formularios"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse survey catalog: %w", err)
	}
	for _, g := range domain.Grades {
		if f, ok := doc.Formularios[g]; !ok || f == nil || len(f.Preguntas) == 0 {
			return nil, fmt.Errorf("survey catalog has no form for grade %s", g)
		}
	}
	return &Catalog{forms: doc.Formularios}, nil
}

// Form returns the form for a grade band.
func (c *Catalog) Form(grade domain.Grade) (*Form, bool) {
	f, ok := c.forms[grade]
	return f, ok
}

// Grades lists the bands that have a form.
func (c *Catalog) Grades() []domain.Grade {
	return lo.Filter(domain.Grades, func(g domain.Grade, _ int) bool {
		_, ok := c.forms[g]
		return ok
	})
}

// Missing returns the ids of the questions in the grade's form that have no
// answer, in form order.
func (c *Catalog) Missing(grade domain.Grade, answers domain.SurveyAnswers) []string {
	f, ok := c.forms[grade]
	if !ok {
		return nil
	}
	unanswered := lo.Filter(f.Preguntas, func(q Question, _ int) bool {
		return answers[q.ID] == ""
	})
	return lo.Map(unanswered, func(q Question, _ int) string { return q.ID })
}
