package validation

import (
	"strings"
	"testing"

	"pretty_exam_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
func int64Ptr(v int64) *int64    { return &v }
func intPtr(v int) *int          { return &v }

func mcOptions() []OptionInput {
	return []OptionInput{
		{Text: "3", IsCorrect: boolPtr(false)},
		{Text: "4", IsCorrect: boolPtr(true)},
	}
}

func TestQuestion_Valid(t *testing.T) {
	res := Question(QuestionInput{
		Text:    "¿Cuánto es 2+2?",
		Type:    model.QuestionTypeMultipleChoice,
		Options: mcOptions(),
	})
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestQuestion_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input QuestionInput
		want  string
	}{
		{
			"text too short",
			QuestionInput{Text: "corto", Type: model.QuestionTypeMultipleChoice, Options: mcOptions()},
			"al menos 10 caracteres",
		},
		{
			"text too long",
			QuestionInput{Text: strings.Repeat("a", 1001), Type: model.QuestionTypeMultipleChoice, Options: mcOptions()},
			"no puede exceder 1000 caracteres",
		},
		{
			"text missing",
			QuestionInput{Text: "   ", Type: model.QuestionTypeMultipleChoice, Options: mcOptions()},
			"El texto de la pregunta es requerido",
		},
		{
			"bad type",
			QuestionInput{Text: "¿Cuánto es 2+2?", Type: "essay", Options: mcOptions()},
			"multiple_choice o true_false",
		},
		{
			"no options",
			QuestionInput{Text: "¿Cuánto es 2+2?", Type: model.QuestionTypeMultipleChoice},
			"La pregunta debe tener opciones",
		},
		{
			"category id not positive",
			QuestionInput{Text: "¿Cuánto es 2+2?", Type: model.QuestionTypeMultipleChoice, CategoryID: int64Ptr(0), Options: mcOptions()},
			"El ID de la categoría debe ser un número entero positivo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Question(tt.input)
			require.False(t, res.IsValid)
			joined := strings.Join(res.Errors, " | ")
			assert.Contains(t, joined, tt.want)
		})
	}
}

func TestQuestion_AggregatesAllErrors(t *testing.T) {
	res := Question(QuestionInput{Text: "corto", Type: "essay"})
	require.False(t, res.IsValid)
	assert.Len(t, res.Errors, 3)
}

func TestOptions_MultipleChoice(t *testing.T) {
	tests := []struct {
		name    string
		options []OptionInput
		want    string
	}{
		{
			"too few",
			[]OptionInput{{Text: "a", IsCorrect: boolPtr(true)}},
			"entre 2 y 6 opciones",
		},
		{
			"too many",
			[]OptionInput{
				{Text: "a", IsCorrect: boolPtr(true)}, {Text: "b", IsCorrect: boolPtr(false)},
				{Text: "c", IsCorrect: boolPtr(false)}, {Text: "d", IsCorrect: boolPtr(false)},
				{Text: "e", IsCorrect: boolPtr(false)}, {Text: "f", IsCorrect: boolPtr(false)},
				{Text: "g", IsCorrect: boolPtr(false)},
			},
			"entre 2 y 6 opciones",
		},
		{
			"zero correct",
			[]OptionInput{{Text: "a", IsCorrect: boolPtr(false)}, {Text: "b", IsCorrect: boolPtr(false)}},
			"al menos una opción correcta",
		},
		{
			"duplicate texts case-insensitive",
			[]OptionInput{{Text: "París", IsCorrect: boolPtr(true)}, {Text: "  parís ", IsCorrect: boolPtr(false)}},
			"opciones con texto duplicado",
		},
		{
			"missing correctness flag",
			[]OptionInput{{Text: "a", IsCorrect: boolPtr(true)}, {Text: "b"}},
			"debe indicar si es correcta",
		},
		{
			"empty option text",
			[]OptionInput{{Text: "a", IsCorrect: boolPtr(true)}, {Text: "  ", IsCorrect: boolPtr(false)}},
			"El texto de la opción 2 es requerido",
		},
		{
			"option text too long",
			[]OptionInput{{Text: "a", IsCorrect: boolPtr(true)}, {Text: strings.Repeat("b", 501), IsCorrect: boolPtr(false)}},
			"no puede exceder 500 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Options(tt.options, model.QuestionTypeMultipleChoice)
			require.False(t, res.IsValid)
			assert.Contains(t, strings.Join(res.Errors, " | "), tt.want)
		})
	}
}

func TestOptions_MultipleChoiceBounds(t *testing.T) {
	two := Options(mcOptions(), model.QuestionTypeMultipleChoice)
	assert.True(t, two.IsValid)

	six := Options([]OptionInput{
		{Text: "a", IsCorrect: boolPtr(true)}, {Text: "b", IsCorrect: boolPtr(false)},
		{Text: "c", IsCorrect: boolPtr(false)}, {Text: "d", IsCorrect: boolPtr(false)},
		{Text: "e", IsCorrect: boolPtr(false)}, {Text: "f", IsCorrect: boolPtr(false)},
	}, model.QuestionTypeMultipleChoice)
	assert.True(t, six.IsValid)
}

func TestOptions_TrueFalse(t *testing.T) {
	valid := Options([]OptionInput{
		{Text: "Verdadero", IsCorrect: boolPtr(true)},
		{Text: "Falso", IsCorrect: boolPtr(false)},
	}, model.QuestionTypeTrueFalse)
	assert.True(t, valid.IsValid)

	three := Options([]OptionInput{
		{Text: "a", IsCorrect: boolPtr(true)},
		{Text: "b", IsCorrect: boolPtr(false)},
		{Text: "c", IsCorrect: boolPtr(false)},
	}, model.QuestionTypeTrueFalse)
	require.False(t, three.IsValid)
	assert.Contains(t, strings.Join(three.Errors, " | "), "exactamente 2 opciones")

	bothCorrect := Options([]OptionInput{
		{Text: "Verdadero", IsCorrect: boolPtr(true)},
		{Text: "Falso", IsCorrect: boolPtr(true)},
	}, model.QuestionTypeTrueFalse)
	require.False(t, bothCorrect.IsValid)
	assert.Contains(t, strings.Join(bothCorrect.Errors, " | "), "exactamente una opción correcta")
}

func TestQuestionUpdate(t *testing.T) {
	empty := QuestionUpdate(QuestionUpdateInput{})
	require.False(t, empty.IsValid)
	assert.Contains(t, empty.Errors[0], "No hay campos")

	shortText := QuestionUpdate(QuestionUpdateInput{Text: strPtr("corto")})
	require.False(t, shortText.IsValid)
	assert.Contains(t, shortText.Errors[0], "al menos 10 caracteres")

	onlyCategory := QuestionUpdate(QuestionUpdateInput{CategoryID: int64Ptr(3)})
	assert.True(t, onlyCategory.IsValid)

	withOptions := QuestionUpdate(QuestionUpdateInput{
		Type:    strPtr(model.QuestionTypeTrueFalse),
		Options: mcOptions(),
	})
	assert.True(t, withOptions.IsValid)
}

func TestIDValidators(t *testing.T) {
	assert.True(t, QuestionID(1).IsValid)
	assert.False(t, QuestionID(0).IsValid)
	assert.False(t, CategoryID(-5).IsValid)
	assert.True(t, ExamID(42).IsValid)
	assert.False(t, ResultID(0).IsValid)
}
