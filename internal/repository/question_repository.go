package repository

import (
	"pretty_exam_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Options").Preload("Category").First(&question, id).Error
	return &question, err
}

// Search filters by category membership and by an accent-folded substring
// over the question text. When no category filter is active the folded term
// also matches category names. Empty filters return everything. Newest first.
func (r *QuestionRepository) Search(foldedTerm string, categoryIDs []uint) ([]model.Question, error) {
	var questions []model.Question

	query := r.DB.Model(&model.Question{}).
		Preload("Options").
		Preload("Category").
		Order("questions.id desc")

	if len(categoryIDs) > 0 {
		query = query.Where("questions.category_id IN ?", categoryIDs)
		if foldedTerm != "" {
			query = query.Where("questions.search_text LIKE ?", "%"+foldedTerm+"%")
		}
	} else if foldedTerm != "" {
		pattern := "%" + foldedTerm + "%"
		query = query.
			Joins("LEFT JOIN categories ON categories.id = questions.category_id").
			Where("questions.search_text LIKE ? OR categories.name_normalized LIKE ?", pattern, pattern)
	}

	err := query.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByCategory(categoryID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Options").Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id desc").
		Find(&questions).Error
	return questions, err
}

// Delete removes the question row; options cascade at the store level.
func (r *QuestionRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Question{}, id)
	return res.RowsAffected, res.Error
}
