package validation

import (
	"fmt"
	"pretty_exam_backend/internal/model"
	"strings"
)

const (
	questionTextMin = 10
	questionTextMax = 1000
	optionTextMax   = 500
	optionsMin      = 2
	optionsMax      = 6
)

// OptionInput is one option as submitted by the client. IsCorrect is a
// pointer so an absent flag can be told apart from an explicit false.
type OptionInput struct {
	Text      string `json:"text"`
	IsCorrect *bool  `json:"isCorrect"`
}

type QuestionInput struct {
	Text       string        `json:"text"`
	Type       string        `json:"type"`
	CategoryID *int64        `json:"categoryId"`
	Source     string        `json:"source"`
	Options    []OptionInput `json:"options"`
}

// QuestionUpdateInput carries only the fields present in a partial update.
type QuestionUpdateInput struct {
	Text       *string       `json:"text"`
	Type       *string       `json:"type"`
	CategoryID *int64        `json:"categoryId"`
	Source     *string       `json:"source"`
	Options    []OptionInput `json:"options"`
}

func validQuestionType(t string) bool {
	return t == model.QuestionTypeMultipleChoice || t == model.QuestionTypeTrueFalse
}

func checkQuestionText(text string, errs []string) []string {
	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		errs = append(errs, "El texto de la pregunta es requerido")
	case len([]rune(trimmed)) < questionTextMin:
		errs = append(errs, fmt.Sprintf("El texto de la pregunta debe tener al menos %d caracteres", questionTextMin))
	case len([]rune(trimmed)) > questionTextMax:
		errs = append(errs, fmt.Sprintf("El texto de la pregunta no puede exceder %d caracteres", questionTextMax))
	}
	return errs
}

// Question checks a full creation payload: text bounds, the two-value type
// enum, an optional positive category id and the option set.
func Question(in QuestionInput) Result {
	var errs []string

	errs = checkQuestionText(in.Text, errs)

	if !validQuestionType(in.Type) {
		errs = append(errs, "El tipo de pregunta debe ser multiple_choice o true_false")
	}

	if in.CategoryID != nil && *in.CategoryID <= 0 {
		errs = append(errs, "El ID de la categoría debe ser un número entero positivo")
	}

	if len(in.Options) == 0 {
		errs = append(errs, "La pregunta debe tener opciones")
	} else if res := Options(in.Options, in.Type); !res.IsValid {
		errs = append(errs, res.Errors...)
	}

	return fromErrors(errs)
}

// Options enforces the type-dependent count bounds and correctness pattern:
// 2-6 options with at least one correct for multiple choice, exactly 2 with
// exactly one correct for true/false, no duplicate texts (case-insensitive,
// trimmed).
func Options(options []OptionInput, questionType string) Result {
	var errs []string

	switch questionType {
	case model.QuestionTypeTrueFalse:
		if len(options) != 2 {
			errs = append(errs, "Las preguntas de verdadero/falso deben tener exactamente 2 opciones")
		}
	default:
		if len(options) < optionsMin || len(options) > optionsMax {
			errs = append(errs, fmt.Sprintf("Las preguntas de opción múltiple deben tener entre %d y %d opciones", optionsMin, optionsMax))
		}
	}

	correctCount := 0
	seen := make(map[string]bool, len(options))
	duplicated := false

	for i, opt := range options {
		trimmed := strings.TrimSpace(opt.Text)
		if trimmed == "" {
			errs = append(errs, fmt.Sprintf("El texto de la opción %d es requerido", i+1))
		} else if len([]rune(trimmed)) > optionTextMax {
			errs = append(errs, fmt.Sprintf("El texto de la opción %d no puede exceder %d caracteres", i+1, optionTextMax))
		}

		if opt.IsCorrect == nil {
			errs = append(errs, fmt.Sprintf("La opción %d debe indicar si es correcta", i+1))
		} else if *opt.IsCorrect {
			correctCount++
		}

		key := strings.ToLower(trimmed)
		if key != "" {
			if seen[key] {
				duplicated = true
			}
			seen[key] = true
		}
	}

	if duplicated {
		errs = append(errs, "No puede haber opciones con texto duplicado")
	}

	if correctCount == 0 {
		errs = append(errs, "Debe haber al menos una opción correcta")
	} else if questionType == model.QuestionTypeTrueFalse && correctCount != 1 {
		errs = append(errs, "Las preguntas de verdadero/falso deben tener exactamente una opción correcta")
	}

	return fromErrors(errs)
}

// QuestionUpdate applies the creation rules to the fields present in a
// partial payload. An empty payload is itself a violation.
func QuestionUpdate(in QuestionUpdateInput) Result {
	if in.Text == nil && in.Type == nil && in.CategoryID == nil && in.Source == nil && in.Options == nil {
		return invalid([]string{"No hay campos para actualizar"})
	}

	var errs []string

	if in.Text != nil {
		errs = checkQuestionText(*in.Text, errs)
	}

	if in.Type != nil && !validQuestionType(*in.Type) {
		errs = append(errs, "El tipo de pregunta debe ser multiple_choice o true_false")
	}

	if in.CategoryID != nil && *in.CategoryID <= 0 {
		errs = append(errs, "El ID de la categoría debe ser un número entero positivo")
	}

	if in.Options != nil {
		questionType := ""
		if in.Type != nil {
			questionType = *in.Type
		}
		if res := Options(in.Options, questionType); !res.IsValid {
			errs = append(errs, res.Errors...)
		}
	}

	return fromErrors(errs)
}
