package model

import "time"

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"

	QuestionSourceManual    = "manual"
	QuestionSourceGenerated = "generated"
)

// Question is an exam item with a type, optional category and an owned set of
// options. SearchText holds the accent-folded lower-cased text, written on
// every insert/update, so search is a single LIKE over an indexed column.
type Question struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	SearchText string    `gorm:"type:text;not null;index" json:"-"`
	Type       string    `gorm:"size:20;not null" json:"type"`
	CategoryID *uint     `gorm:"index" json:"categoryId"`
	Source     string    `gorm:"size:20;not null;default:manual" json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Options  []Option  `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	Exams    []Exam    `gorm:"many2many:exam_questions;constraint:OnDelete:CASCADE" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
