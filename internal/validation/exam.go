package validation

import (
	"fmt"
	"strings"
)

const (
	examNameMin        = 3
	examNameMax        = 200
	examDescriptionMax = 1000
	examDurationMin    = 5
	examDurationMax    = 1440
)

type ExamInput struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"durationMinutes"`
	QuestionIDs     []int64 `json:"questionIds"`
}

// ExamUpdateInput carries only the fields present in a partial update; an
// absent name is not required again.
type ExamUpdateInput struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	DurationMinutes *int    `json:"durationMinutes"`
	QuestionIDs     []int64 `json:"questionIds"`
}

func checkExamName(name string, errs []string) []string {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs = append(errs, "El nombre del examen es requerido")
	case len([]rune(trimmed)) < examNameMin:
		errs = append(errs, fmt.Sprintf("El nombre debe tener al menos %d caracteres", examNameMin))
	case len([]rune(trimmed)) > examNameMax:
		errs = append(errs, fmt.Sprintf("El nombre no puede exceder %d caracteres", examNameMax))
	}
	return errs
}

func checkExamOptionalFields(description *string, duration *int, errs []string) []string {
	if description != nil && len([]rune(strings.TrimSpace(*description))) > examDescriptionMax {
		errs = append(errs, fmt.Sprintf("La descripción no puede exceder %d caracteres", examDescriptionMax))
	}

	if duration != nil {
		switch {
		case *duration < examDurationMin:
			errs = append(errs, fmt.Sprintf("La duración debe ser de al menos %d minutos", examDurationMin))
		case *duration > examDurationMax:
			errs = append(errs, fmt.Sprintf("La duración no puede exceder %d minutos", examDurationMax))
		}
	}
	return errs
}

func Exam(in ExamInput) Result {
	var errs []string
	errs = checkExamName(in.Name, errs)
	errs = checkExamOptionalFields(in.Description, in.DurationMinutes, errs)
	return fromErrors(errs)
}

func ExamUpdate(in ExamUpdateInput) Result {
	if in.Name == nil && in.Description == nil && in.DurationMinutes == nil && in.QuestionIDs == nil {
		return invalid([]string{"No hay campos para actualizar"})
	}

	var errs []string
	if in.Name != nil {
		errs = checkExamName(*in.Name, errs)
	}
	errs = checkExamOptionalFields(in.Description, in.DurationMinutes, errs)
	return fromErrors(errs)
}
