package model

import "time"

// Category groups questions. The normalized name (trimmed, lower-cased,
// accent-folded) carries the unique index, so "Historia" and "historia "
// collide at the store level regardless of any pre-check.
type Category struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	NameNormalized string    `gorm:"size:100;not null;uniqueIndex" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`

	// Deleting a category with questions is rejected by the store (RESTRICT),
	// not pre-checked by the application.
	Questions []Question `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT" json:"questions,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
