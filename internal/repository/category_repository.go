package repository

import (
	"pretty_exam_backend/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(category *model.Category) error {
	return r.DB.Create(category).Error
}

func (r *CategoryRepository) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) FindByID(id uint) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// FindByNormalized probes for an existing category by its normalized name,
// optionally excluding one id (self on update).
func (r *CategoryRepository) FindByNormalized(normalized string, excludeID uint) (*model.Category, error) {
	var category model.Category
	query := r.DB.Where("name_normalized = ?", normalized)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	return &category, err
}

func (r *CategoryRepository) Update(category *model.Category) error {
	return r.DB.Model(category).Select("Name", "NameNormalized").Updates(category).Error
}

// Delete removes by id and reports how many rows went away so a missing
// category can be told apart from a successful delete. A category still
// referenced by questions makes SQLite reject the statement.
func (r *CategoryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&model.Category{}, id)
	return res.RowsAffected, res.Error
}
