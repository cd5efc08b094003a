package validation

import (
	"strings"
	"testing"

	"pretty_exam_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		valid   bool
		wantErr string
	}{
		{"plain name", "Historia", true, ""},
		{"accented name", "Matemáticas Básicas", true, ""},
		{"allowed punctuation", "Álgebra - Nivel 1 (intro)_v2.", true, ""},
		{"min length", "IA", true, ""},
		{"empty", "   ", false, "El nombre de la categoría es requerido"},
		{"too short", "A", false, "al menos 2 caracteres"},
		{"too long", strings.Repeat("a", 101), false, "no puede exceder 100 caracteres"},
		{"special characters", "Cat@#$", false, "solo puede contener"},
		{"emoji", "Historia 🎓", false, "solo puede contener"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Category(CategoryInput{Name: tt.input})
			if tt.valid {
				assert.True(t, res.IsValid)
				assert.Empty(t, res.Errors)
				return
			}
			require.False(t, res.IsValid)
			assert.Contains(t, strings.Join(res.Errors, " | "), tt.wantErr)
		})
	}
}

func TestCategoryNameUniqueness(t *testing.T) {
	existing := []model.Category{
		{ID: 1, Name: "Historia"},
		{ID: 2, Name: "Matemáticas"},
	}

	t.Run("exact duplicate", func(t *testing.T) {
		res := CategoryNameUniqueness("Historia", existing, 0)
		require.False(t, res.IsValid)
		assert.Contains(t, res.Errors[0], "Ya existe una categoría")
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		res := CategoryNameUniqueness("  historia ", existing, 0)
		assert.False(t, res.IsValid)
	})

	t.Run("accent insensitive", func(t *testing.T) {
		res := CategoryNameUniqueness("matematicas", existing, 0)
		assert.False(t, res.IsValid)
	})

	t.Run("excludes itself on update", func(t *testing.T) {
		res := CategoryNameUniqueness("Historia", existing, 1)
		assert.True(t, res.IsValid)
	})

	t.Run("new name", func(t *testing.T) {
		res := CategoryNameUniqueness("Química", existing, 0)
		assert.True(t, res.IsValid)
	})
}
