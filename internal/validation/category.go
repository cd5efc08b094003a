package validation

import (
	"fmt"
	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/util"
	"regexp"
	"strings"
)

const (
	categoryNameMin = 2
	categoryNameMax = 100
)

// Letters (including Spanish accented vowels, ñ and ü), digits, spaces and
// the characters - _ ( ) .
var categoryNamePattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑüÜ0-9\s\-_().]+$`)

type CategoryInput struct {
	Name string `json:"name"`
}

func Category(in CategoryInput) Result {
	var errs []string

	trimmed := strings.TrimSpace(in.Name)
	switch {
	case trimmed == "":
		errs = append(errs, "El nombre de la categoría es requerido")
	case len([]rune(trimmed)) < categoryNameMin:
		errs = append(errs, fmt.Sprintf("El nombre debe tener al menos %d caracteres", categoryNameMin))
	case len([]rune(trimmed)) > categoryNameMax:
		errs = append(errs, fmt.Sprintf("El nombre no puede exceder %d caracteres", categoryNameMax))
	default:
		if !categoryNamePattern.MatchString(trimmed) {
			errs = append(errs, "El nombre solo puede contener letras, números, espacios y los caracteres - _ ( ) .")
		}
	}

	return fromErrors(errs)
}

// CategoryNameUniqueness compares against a caller-supplied snapshot of the
// existing categories, excluding excludeID on update. It is a fast hint only;
// the unique index on the normalized name is authoritative.
func CategoryNameUniqueness(name string, existing []model.Category, excludeID uint) Result {
	folded := util.FoldText(name)
	for _, cat := range existing {
		if cat.ID == excludeID {
			continue
		}
		if util.FoldText(cat.Name) == folded {
			return invalid([]string{"Ya existe una categoría con ese nombre"})
		}
	}
	return valid()
}
