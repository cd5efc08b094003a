package repository

import (
	"pretty_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) FindAll() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Order("id desc").Find(&exams).Error
	return exams, err
}

func (r *ExamRepository) FindByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

// GetQuestions loads the exam's question set with options and category
// attached, newest first.
func (r *ExamRepository) GetQuestions(examID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Options").Preload("Category").
		Joins("JOIN exam_questions ON exam_questions.question_id = questions.id").
		Where("exam_questions.exam_id = ?", examID).
		Order("questions.id desc").
		Find(&questions).Error
	return questions, err
}

// ReplaceQuestions overwrites the full association set inside the caller's
// transaction.
func (r *ExamRepository) ReplaceQuestions(tx *gorm.DB, exam *model.Exam, questions []model.Question) error {
	refs := make([]*model.Question, len(questions))
	for i := range questions {
		refs[i] = &questions[i]
	}
	return tx.Model(exam).Association("Questions").Replace(refs)
}

// AddQuestions and RemoveQuestions mutate the join table incrementally, so
// concurrent calls compose additively/subtractively instead of overwriting
// each other.
func (r *ExamRepository) AddQuestions(exam *model.Exam, questions []model.Question) error {
	refs := make([]*model.Question, len(questions))
	for i := range questions {
		refs[i] = &questions[i]
	}
	return r.DB.Model(exam).Association("Questions").Append(refs)
}

func (r *ExamRepository) RemoveQuestions(exam *model.Exam, questions []model.Question) error {
	refs := make([]*model.Question, len(questions))
	for i := range questions {
		refs[i] = &questions[i]
	}
	return r.DB.Model(exam).Association("Questions").Delete(refs)
}
