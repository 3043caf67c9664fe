package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		id       string
		variants []string
		want     string
	}{
		{name: "no variants", kind: KindActiveProfile, id: "EST001", want: "eduperfil:perfil_activo:EST001"},
		{name: "empty variants are skipped", kind: KindActiveProfile, id: "EST001", variants: []string{"", ""}, want: "eduperfil:perfil_activo:EST001"},
		{name: "joined variants", kind: "formulario", id: "3-4", variants: []string{"v1", "es"}, want: "eduperfil:formulario:3-4:v1_es"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.kind, tt.id, tt.variants...))
		})
	}
}

func TestActiveProfileKey(t *testing.T) {
	assert.Equal(t, "eduperfil:perfil_activo:EST9", ActiveProfileKey("EST9"))
}
