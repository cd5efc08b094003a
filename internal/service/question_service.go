package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pretty_exam_backend/internal/model"
	"pretty_exam_backend/internal/repository"
	"pretty_exam_backend/internal/util"
	"pretty_exam_backend/internal/validation"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	searchCacheTTL    = time.Minute
	searchRevisionKey = "questions:rev"
)

type QuestionService struct {
	Repo *repository.QuestionRepository
	DB   *gorm.DB
	rdb  *redis.Client
}

// NewQuestionService takes an optional redis client; a nil client disables
// the search cache.
func NewQuestionService(repo *repository.QuestionRepository, db *gorm.DB, rdb *redis.Client) *QuestionService {
	return &QuestionService{Repo: repo, DB: db, rdb: rdb}
}

// Create inserts the question and its options in one transaction, so a
// failure leaves neither an orphan question nor loose options.
func (s *QuestionService) Create(req validation.QuestionInput) (*model.Question, error) {
	if res := validation.Question(req); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	text := strings.TrimSpace(req.Text)
	source := model.QuestionSourceManual
	if req.Source == model.QuestionSourceGenerated {
		source = model.QuestionSourceGenerated
	}

	question := &model.Question{
		Text:       text,
		SearchText: util.FoldText(text),
		Type:       req.Type,
		Source:     source,
	}
	if req.CategoryID != nil {
		id := uint(*req.CategoryID)
		question.CategoryID = &id
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.Option{
			Text:      strings.TrimSpace(opt.Text),
			IsCorrect: *opt.IsCorrect,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if question.CategoryID != nil {
			var count int64
			if err := tx.Model(&model.Category{}).Where("id = ?", *question.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return util.NewNotFoundError("La categoría no existe")
			}
		}
		return tx.Create(question).Error
	})
	if err != nil {
		var appErr *util.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, util.NewOperationError(util.TypeCreate, "No se pudo crear la pregunta", err)
	}

	s.bumpSearchRevision()
	return s.Repo.FindByID(question.ID)
}

// Update applies the partial payload and, when options are present, replaces
// the option set with a diff-based upsert: options whose trimmed text matches
// keep their id (correctness updated in place), removed options are deleted
// together with the user answers that reference them, and new options are
// inserted. Historical answers survive an edit unless their option went away.
func (s *QuestionService) Update(id uint, req validation.QuestionUpdateInput) (*model.Question, error) {
	if res := validation.QuestionID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	if res := validation.QuestionUpdate(req); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing model.Question
		if err := tx.Preload("Options").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.NewNotFoundError("La pregunta no existe")
			}
			return err
		}

		if req.Options != nil {
			// The effective type decides the count/correctness bounds when
			// the payload changes options without changing the type.
			effectiveType := existing.Type
			if req.Type != nil {
				effectiveType = *req.Type
			}
			if res := validation.Options(req.Options, effectiveType); !res.IsValid {
				return util.NewValidationError(res.Errors)
			}
		}

		if req.CategoryID != nil {
			var count int64
			if err := tx.Model(&model.Category{}).Where("id = ?", *req.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return util.NewNotFoundError("La categoría no existe")
			}
		}

		updates := make(map[string]interface{})
		if req.Text != nil {
			text := strings.TrimSpace(*req.Text)
			updates["text"] = text
			updates["search_text"] = util.FoldText(text)
		}
		if req.Type != nil {
			updates["type"] = *req.Type
		}
		if req.CategoryID != nil {
			updates["category_id"] = uint(*req.CategoryID)
		}
		if req.Source != nil {
			updates["source"] = *req.Source
		}
		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Options != nil {
			if err := upsertOptions(tx, &existing, req.Options); err != nil {
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
		return nil, util.NewOperationError(util.TypeUpdate, "No se pudo actualizar la pregunta", err)
	}

	s.bumpSearchRevision()
	return s.Repo.FindByID(id)
}

func upsertOptions(tx *gorm.DB, question *model.Question, incoming []validation.OptionInput) error {
	byText := make(map[string]*model.Option, len(question.Options))
	for i := range question.Options {
		byText[strings.ToLower(strings.TrimSpace(question.Options[i].Text))] = &question.Options[i]
	}

	kept := make(map[uint]bool, len(incoming))
	for _, opt := range incoming {
		text := strings.TrimSpace(opt.Text)
		key := strings.ToLower(text)

		if current, ok := byText[key]; ok {
			kept[current.ID] = true
			err := tx.Model(&model.Option{}).Where("id = ?", current.ID).
				Updates(map[string]interface{}{"text": text, "is_correct": *opt.IsCorrect}).Error
			if err != nil {
				return err
			}
			continue
		}

		created := model.Option{Text: text, IsCorrect: *opt.IsCorrect, QuestionID: question.ID}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}
	}

	var removedIDs []uint
	for _, current := range question.Options {
		if !kept[current.ID] {
			removedIDs = append(removedIDs, current.ID)
		}
	}
	if len(removedIDs) == 0 {
		return nil
	}

	// Answers pointing at removed options go with them; the delete is
	// explicit rather than left to the cascade so the intent is visible.
	if err := tx.Where("option_id IN ?", removedIDs).Delete(&model.UserAnswer{}).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", removedIDs).Delete(&model.Option{}).Error
}

func (s *QuestionService) Delete(id uint) error {
	if res := validation.QuestionID(int64(id)); !res.IsValid {
		return util.NewValidationError(res.Errors)
	}

	rows, err := s.Repo.Delete(id)
	if err != nil {
		return util.NewOperationError(util.TypeDelete, "No se pudo eliminar la pregunta", err)
	}
	if rows == 0 {
		return util.NewNotFoundError("La pregunta no existe")
	}

	s.bumpSearchRevision()
	return nil
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	if res := validation.QuestionID(int64(id)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}

	question, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("La pregunta no existe")
		}
		return nil, err
	}
	return question, nil
}

// Search with no term and no category filter is equivalent to listing
// everything. Results come back newest-first with options and category
// eagerly attached, cached for a minute when redis is available.
func (s *QuestionService) Search(term string, categoryIDs []uint) ([]model.Question, error) {
	folded := util.FoldText(term)

	cacheKey := s.searchCacheKey(folded, categoryIDs)
	if cached, ok := s.cachedSearch(cacheKey); ok {
		return cached, nil
	}

	questions, err := s.Repo.Search(folded, categoryIDs)
	if err != nil {
		return nil, err
	}

	s.storeSearch(cacheKey, questions)
	return questions, nil
}

func (s *QuestionService) GetByCategory(categoryID uint) ([]model.Question, error) {
	if res := validation.CategoryID(int64(categoryID)); !res.IsValid {
		return nil, util.NewValidationError(res.Errors)
	}
	return s.Repo.FindByCategory(categoryID)
}

func (s *QuestionService) searchCacheKey(folded string, categoryIDs []uint) string {
	if s.rdb == nil {
		return ""
	}
	rev, err := s.rdb.Get(context.Background(), searchRevisionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return ""
	}
	ids := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("questions:search:%d:%s:%s", rev, folded, strings.Join(ids, ","))
}

func (s *QuestionService) cachedSearch(key string) ([]model.Question, bool) {
	if s.rdb == nil || key == "" {
		return nil, false
	}
	raw, err := s.rdb.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	var questions []model.Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, false
	}
	return questions, true
}

func (s *QuestionService) storeSearch(key string, questions []model.Question) {
	if s.rdb == nil || key == "" {
		return
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return
	}
	s.rdb.Set(context.Background(), key, raw, searchCacheTTL)
}

// bumpSearchRevision shifts every cached search key out of reach instead of
// scanning for them.
func (s *QuestionService) bumpSearchRevision() {
	if s.rdb == nil {
		return
	}
	s.rdb.Incr(context.Background(), searchRevisionKey)
}
