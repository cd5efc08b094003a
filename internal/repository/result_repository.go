package repository

import (
	"pretty_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

func (r *ResultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	err := r.DB.Preload("UserAnswers").Preload("Exam").First(&result, id).Error
	return &result, err
}

func (r *ResultRepository) FindByExamID(examID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.DB.Where("exam_id = ?", examID).Order("taken_at desc").Find(&results).Error
	return results, err
}

// Delete removes the result; its user answers cascade at the store level.
func (r *ResultRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Result{}, id)
	return res.RowsAffected, res.Error
}
