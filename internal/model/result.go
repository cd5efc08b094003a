package model

import "time"

// Result is the persisted outcome of one completed simulation. Immutable
// after creation except for deletion; score fields are supplied by the
// client, not recomputed here.
type Result struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ExamID           uint      `gorm:"not null;index" json:"examId"`
	Score            float64   `gorm:"not null" json:"score"`
	CorrectAnswers   int       `gorm:"not null" json:"correctAnswers"`
	IncorrectAnswers int       `gorm:"not null" json:"incorrectAnswers"`
	TimeUsed         int       `gorm:"not null" json:"timeUsed"`
	TakenAt          time.Time `json:"takenAt"`

	Exam        *Exam        `gorm:"foreignKey:ExamID;constraint:OnDelete:CASCADE" json:"exam,omitempty"`
	UserAnswers []UserAnswer `gorm:"foreignKey:ResultID;constraint:OnDelete:CASCADE" json:"userAnswers,omitempty"`
}

func (Result) TableName() string {
	return "results"
}

// UserAnswer records the option picked for one question within one result.
// At most one answer per question per result (composite key). IsCorrect is a
// snapshot taken from the option at write time; it is not recomputed if the
// option's correctness flag is edited later.
type UserAnswer struct {
	ResultID   uint `gorm:"primaryKey;autoIncrement:false" json:"resultId"`
	QuestionID uint `gorm:"primaryKey;autoIncrement:false" json:"questionId"`
	OptionID   uint `gorm:"not null;index" json:"optionId"`
	IsCorrect  bool `gorm:"not null" json:"isCorrect"`

	Option *Option `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE" json:"option,omitempty"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
