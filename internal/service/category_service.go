package service

import (
	"errors"
	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/repository"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"strings"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *CategoryService) GetAll() ([]model.Category, error) {
	return s.Repo.FindAll()
}

// Create validates the name, pre-checks uniqueness against a snapshot for a
// friendly message, and inserts. The unique index on the normalized name is
// the real arbiter: a race past the snapshot still comes back as a conflict.
func (s *CategoryService) Create(req CategoryRequest) (*model.Category, error) {
	if res := validation.Category(validation.CategoryInput{Name: req.Name}); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	existing, err := s.Repo.FindAll()
	if err != nil {
		return nil, util.NewOperationError(util.TypeCreate, "No se pudo crear la categoría", err)
	}
	if res := validation.CategoryNameUniqueness(req.Name, existing, 0); !res.IsValid {
		return nil, util.NewConflictError(res.Errors[0])
	}

	category := &model.Category{
		Name:           strings.TrimSpace(req.Name),
		NameNormalized: util.FoldText(req.Name),
	}
	if err := s.Repo.Create(category); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflictError("Ya existe una categoría con ese nombre")
		}
		return nil, util.NewOperationError(util.TypeCreate, "No se pudo crear la categoría", err)
	}

	return category, nil
}

func (s *CategoryService) Update(id uint, req CategoryRequest) (*model.Category, error) {
	if res := validation.CategoryID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	if res := validation.Category(validation.CategoryInput{Name: req.Name}); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	category, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("La categoría no existe")
		}
		return nil, util.NewOperationError(util.TypeUpdate, "No se pudo actualizar la categoría", err)
	}

	existing, err := s.Repo.FindAll()
	if err != nil {
		return nil, util.NewOperationError(util.TypeUpdate, "No se pudo actualizar la categoría", err)
	}
	if res := validation.CategoryNameUniqueness(req.Name, existing, id); !res.IsValid {
		return nil, util.NewConflictError(res.Errors[0])
	}

	category.Name = strings.TrimSpace(req.Name)
	category.NameNormalized = util.FoldText(req.Name)
	if err := s.Repo.Update(category); err != nil {
		if util.IsUniqueViolation(err) {
			return nil, util.NewConflictError("Ya existe una categoría con ese nombre")
		}
		return nil, util.NewOperationError(util.TypeUpdate, "No se pudo actualizar la categoría", err)
	}

	return category, nil
}

// Delete relies on the store's RESTRICT: a category still referenced by
// questions is rejected at the foreign-key level, not pre-checked here.
func (s *CategoryService) Delete(id uint) error {
	if res := validation.CategoryID(int64(id)); !res.IsValid {
		return util.NewValidationError(res.Errors)
	}

	rows, err := s.Repo.Delete(id)
	if err != nil {
		if util.IsForeignKeyViolation(err) {
			return util.NewOperationError(util.TypeDelete,
				"No se puede eliminar la categoría porque tiene preguntas asociadas", err)
		}
		return util.NewOperationError(util.TypeDelete, "No se pudo eliminar la categoría", err)
	}
	if rows == 0 {
		return util.NewNotFoundError("La categoría no existe")
	}
	return nil
}

// NameExists is the probe the AI import flow uses to decide whether to reuse
// an existing category. Returns the match when there is one.
func (s *CategoryService) NameExists(name string, excludeID uint) (*model.Category, bool, error) {
	category, err := s.Repo.FindByNormalized(util.FoldText(name), excludeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return category, true, nil
}
