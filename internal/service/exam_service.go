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

type ExamService struct {
	Repo *repository.ExamRepository
	DB   *gorm.DB
}

func NewExamService(repo *repository.ExamRepository, db *gorm.DB) *ExamService {
	return &ExamService{Repo: repo, DB: db}
}

func (s *ExamService) GetAll() ([]model.Exam, error) {
	return s.Repo.FindAll()
}

func (s *ExamService) GetByID(id uint) (*model.Exam, error) {
	if res := validation.ExamID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	exam, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("El examen no existe")
		}
		return nil, err
	}
	return exam, nil
}

// loadQuestions resolves an id list and fails if any id is missing, so an
// association write never silently shrinks the requested set.
func loadQuestions(tx *gorm.DB, ids []int64) ([]model.Question, error) {
	uintIDs := make([]uint, 0, len(ids))
	for _, id := range ids {
		if res := validation.QuestionID(id); !res.IsValid {
			return nil, util.NewValidationError(res.Errors)
		}
		uintIDs = append(uintIDs, uint(id))
	}

	var questions []model.Question
	if err := tx.Where("id IN ?", uintIDs).Find(&questions).Error; err != nil {
		return nil, err
	}
	if len(questions) != len(uintIDs) {
		return nil, util.NewNotFoundError("Una o más preguntas no existen")
	}
	return questions, nil
}

func (s *ExamService) Create(req validation.ExamInput) (*model.Exam, error) {
	if res := validation.Exam(req); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	exam := &model.Exam{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(exam).Error; err != nil {
			return err
		}
		if len(req.QuestionIDs) > 0 {
			questions, err := loadQuestions(tx, req.QuestionIDs)
			if err != nil {
				return err
			}
			return s.Repo.ReplaceQuestions(tx, exam, questions)
		}
		return nil
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, util.NewOperationError(util.TypeCreate, "No se pudo crear el examen", err)
	}

	return exam, nil
}

// Update has partial semantics: absent fields keep their current values and
// an absent questionIds leaves the association untouched, while an explicit
// empty list clears it.
func (s *ExamService) Update(id uint, req validation.ExamUpdateInput) (*model.Exam, error) {
	if res := validation.ExamID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	if res := validation.ExamUpdate(req); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var exam model.Exam
		if err := tx.First(&exam, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFoundError("El examen no existe")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.DurationMinutes != nil {
			updates["duration_minutes"] = *req.DurationMinutes
		}
		if len(updates) > 0 {
			if err := tx.Model(&exam).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.QuestionIDs != nil {
			questions, err := loadQuestions(tx, req.QuestionIDs)
			if err != nil {
				return err
			}
			return s.Repo.ReplaceQuestions(tx, &exam, questions)
		}
		return nil
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, util.NewOperationError(util.TypeUpdate, "No se pudo actualizar el examen", err)
	}

	return s.Repo.FindByID(id)
}

func (s *ExamService) Delete(id uint) error {
	if res := validation.ExamID(int64(id)); !res.IsValid {
		return util.NewValidationError(res.Errors)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var exam model.Exam
		if err := tx.First(&exam, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFoundError("El examen no existe")
			}
			return err
		}
		if err := tx.Model(&exam).Association("Questions").Clear(); err != nil {
			return err
		}
		return tx.Delete(&exam).Error
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return util.NewOperationError(util.TypeDelete, "No se pudo eliminar el examen", err)
	}
	return nil
}

func (s *ExamService) GetQuestions(examID uint) ([]model.Question, error) {
	if _, err := s.GetByID(examID); err != nil {
		return nil, err
	}
	return s.Repo.GetQuestions(examID)
}

func (s *ExamService) AddQuestions(examID uint, questionIDs []int64) error {
	exam, err := s.GetByID(examID)
	if err != nil {
		return err
	}

	questions, err := loadQuestions(s.DB, questionIDs)
	if err != nil {
		return err
	}

	if err := s.Repo.AddQuestions(exam, questions); err != nil {
		return util.NewOperationError(util.TypeUpdate, "No se pudieron agregar las preguntas al examen", err)
	}
	return nil
}

func (s *ExamService) RemoveQuestions(examID uint, questionIDs []int64) error {
	exam, err := s.GetByID(examID)
	if err != nil {
		return err
	}

	questions, err := loadQuestions(s.DB, questionIDs)
	if err != nil {
		return err
	}

	if err := s.Repo.RemoveQuestions(exam, questions); err != nil {
		return util.NewOperationError(util.TypeUpdate, "No se pudieron quitar las preguntas del examen", err)
	}
	return nil
}
