package model

// Option is one selectable answer, exclusively owned by its question.
type Option struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Text       string `gorm:"size:500;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
}

func (Option) TableName() string {
	return "options"
}
