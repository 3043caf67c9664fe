package exercisegen

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed exercises.schema.json
var exercisesSchema []byte

const schemaURL = "schema://exercises.json"

// ParsedExercise is one exercise as returned by the model.
type ParsedExercise struct {
	Titulo             string   `json:"titulo"`
	Enunciado          string   `json:"enunciado"`
	Opciones           []string `json:"opciones"`
	RespuestaCorrecta  string   `json:"respuesta_correcta"`
	Explicacion        string   `json:"explicacion"`
	Tipo               string   `json:"tipo,omitempty"`
	Nivel              string   `json:"nivel,omitempty"`
	OperacionPrincipal string   `json:"operacion_principal,omitempty"`
	Contexto           string   `json:"contexto,omitempty"`
	IncluyeVisual      bool     `json:"incluye_visual"`
}

// InvalidOutputError reports model output that is not a usable exercise
// payload. It is worth retrying.
type InvalidOutputError struct {
	Raw string
	Err error
}

func (e *InvalidOutputError) Error() string {
	return fmt.Sprintf("invalid model output: %v", e.Err)
}

func (e *InvalidOutputError) Unwrap() error { return e.Err }

// Parser validates model output against the exercise schema.
type Parser struct {
	schema *jsonschema.Schema
}

func NewParser() (*Parser, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(exercisesSchema))
	if err != nil {
		return nil, fmt.Errorf("parse exercise schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add exercise schema: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile exercise schema: %w", err)
	}
	return &Parser{schema: compiled}, nil
}

// Parse extracts the exercises from raw model text. Markdown fences and
// text around the JSON object are ignored.
func (p *Parser) Parse(raw string) ([]ParsedExercise, error) {
	body, err := extractJSON(raw)
	if err != nil {
		return nil, &InvalidOutputError{Raw: raw, Err: err}
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(body))
	if err != nil {
		return nil, &InvalidOutputError{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := p.schema.Validate(inst); err != nil {
		return nil, &InvalidOutputError{Raw: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var payload struct {
		Ejercicios []ParsedExercise `json:"ejercicios"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, &InvalidOutputError{Raw: raw, Err: err}
	}

	for i, ex := range payload.Ejercicios {
		idx := int(ex.RespuestaCorrecta[0] - 'A')
		if idx >= len(ex.Opciones) {
			return nil, &InvalidOutputError{
				Raw: raw,
				Err: fmt.Errorf("exercise %d: respuesta_correcta %q has no matching option (%d options)", i, ex.RespuestaCorrecta, len(ex.Opciones)),
			}
		}
	}
	return payload.Ejercicios, nil
}

func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found")
	}
	return s[start : end+1], nil
}
