// Package validation holds the pure input rules for questions, options,
// categories and exams. Every function is side-effect free and returns the
// full list of violations, so a client can surface all problems at once.
package validation

// Result aggregates every rule violation found in one input.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func valid() Result {
	return Result{IsValid: true, Errors: []string{}}
}

func invalid(errs []string) Result {
	return Result{IsValid: false, Errors: errs}
}

func fromErrors(errs []string) Result {
	if len(errs) > 0 {
		return invalid(errs)
	}
	return valid()
}

func positiveID(id int64, entity string) Result {
	if id <= 0 {
		return invalid([]string{"El ID de " + entity + " debe ser un número entero positivo"})
	}
	return valid()
}

func QuestionID(id int64) Result {
	return positiveID(id, "la pregunta")
}

func CategoryID(id int64) Result {
	return positiveID(id, "la categoría")
}

func ExamID(id int64) Result {
	return positiveID(id, "el examen")
}

func ResultID(id int64) Result {
	return positiveID(id, "el resultado")
}
