package model

import "time"

// Exam is a named, optionally timed collection of questions. The question set
// is unordered; the same question may belong to any number of exams.
type Exam struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:200;not null" json:"name"`
	Description     *string   `gorm:"size:1000" json:"description"`
	DurationMinutes *int      `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Questions []Question `gorm:"many2many:exam_questions;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
