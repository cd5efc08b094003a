package service

import (
	"errors"
	"fmt"
	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/repository"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"time"

	"gorm.io/gorm"
)

type ResultService struct {
	Repo *repository.ResultRepository
	DB   *gorm.DB
}

func NewResultService(repo *repository.ResultRepository, db *gorm.DB) *ResultService {
	return &ResultService{Repo: repo, DB: db}
}

type UserAnswerRequest struct {
	QuestionID uint `json:"questionId" binding:"required"`
	OptionID   uint `json:"optionId" binding:"required"`
}

// ResultRequest carries the client-computed totals; the service assigns
// taken_at but does not recompute score from the exam's questions.
type ResultRequest struct {
	ExamID           uint                `json:"examId" binding:"required"`
	Score            float64             `json:"score"`
	CorrectAnswers   int                 `json:"correctAnswers"`
	IncorrectAnswers int                 `json:"incorrectAnswers"`
	TimeUsed         int                 `json:"timeUsed"`
	Answers          []UserAnswerRequest `json:"answers"`
}

func validateResultRequest(req ResultRequest) []string {
	var errs []string
	if req.ExamID == 0 {
		errs = append(errs, "El ID del examen es requerido")
	}
	if req.Score < 0 || req.Score > 100 {
		errs = append(errs, "El puntaje debe estar entre 0 y 100")
	}
	if req.CorrectAnswers < 0 || req.IncorrectAnswers < 0 {
		errs = append(errs, "Los contadores de respuestas no pueden ser negativos")
	}
	if req.TimeUsed < 0 {
		errs = append(errs, "El tiempo utilizado no puede ser negativo")
	}
	return errs
}

// Create persists the result and, when the client inlines the recorded
// answers, writes them in the same transaction so a finished simulation
// lands atomically.
func (s *ResultService) Create(req ResultRequest) (*model.Result, error) {
	if errs := validateResultRequest(req); len(errs) > 0 {
		return nil, util.NewValidationError(errs)
	}

	result := &model.Result{
		ExamID:           req.ExamID,
		Score:            req.Score,
		CorrectAnswers:   req.CorrectAnswers,
		IncorrectAnswers: req.IncorrectAnswers,
		TimeUsed:         req.TimeUsed,
		TakenAt:          time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Exam{}).Where("id = ?", req.ExamID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return util.NewNotFoundError("El examen no existe")
		}

		if err := tx.Create(result).Error; err != nil {
			return err
		}

		for _, answer := range req.Answers {
			if err := createAnswer(tx, result.ID, answer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, util.NewOperationError(util.TypeCreate, "No se pudo guardar el resultado", err)
	}

	return s.Repo.FindByID(result.ID)
}

// createAnswer derives is_correct from the referenced option at write time
// and checks the option actually belongs to the stated question.
func createAnswer(tx *gorm.DB, resultID uint, req UserAnswerRequest) error {
	var option model.Option
	if err := tx.First(&option, req.OptionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFoundError("La opción no existe")
		}
		return err
	}
	if option.QuestionID != req.QuestionID {
		return util.NewValidationError([]string{
			fmt.Sprintf("La opción %d no pertenece a la pregunta %d", req.OptionID, req.QuestionID),
		})
	}

	answer := &model.UserAnswer{
		ResultID:   resultID,
		QuestionID: req.QuestionID,
		OptionID:   req.OptionID,
		IsCorrect:  option.IsCorrect,
	}
	if err := tx.Create(answer).Error; err != nil {
		if util.IsUniqueViolation(err) {
			return util.NewConflictError("Ya existe una respuesta para esta pregunta en el resultado")
		}
		return err
	}
	return nil
}

// RecordAnswer is the incremental surface for clients that persist answers
// one round-trip at a time.
func (s *ResultService) RecordAnswer(resultID uint, req UserAnswerRequest) error {
	if res := validation.ResultID(int64(resultID)); !res.IsValid {
		return util.NewValidationError(res.Errors)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Result{}).Where("id = ?", resultID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return util.NewNotFoundError("El resultado no existe")
		}
		return createAnswer(tx, resultID, req)
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return util.NewOperationError(util.TypeCreate, "No se pudo guardar la respuesta", err)
	}
	return nil
}

func (s *ResultService) GetByID(id uint) (*model.Result, error) {
	if res := validation.ResultID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	result, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("El resultado no existe")
		}
		return nil, err
	}
	return result, nil
}

func (s *ResultService) GetByExamID(examID uint) ([]model.Result, error) {
	if res := validation.ExamID(int64(examID)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	return s.Repo.FindByExamID(examID)
}

func (s *ResultService) Delete(id uint) error {
	if res := validation.ResultID(int64(id)); !res.IsValid {
		return util.NewValidationError(res.Errors)
	}

	rows, err := s.Repo.Delete(id)
	if err != nil {
		return util.NewOperationError(util.TypeDelete, "No se pudo eliminar el resultado", err)
	}
	if rows == 0 {
		return util.NewNotFoundError("El resultado no existe")
	}
	return nil
}
