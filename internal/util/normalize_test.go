package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spanish accents", "Matemáticas", "matematicas"},
		{"trims and lowers", "  Historia Universal  ", "historia universal"},
		{"enie", "Añejo", "anejo"},
		{"diaeresis", "pingüino", "pinguino"},
		{"all accented vowels", "ÁÉÍÓÚ áéíóú", "aeiou aeiou"},
		{"non spanish diacritics", "Ça c'est déjà vu", "ca c'est deja vu"},
		{"plain ascii untouched", "simple text 123", "simple text 123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldText(tt.in))
		})
	}
}
