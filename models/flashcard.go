// models/flashcard.go
package models

import (
	"time"
)

// FlashcardProgress tracks per-user review state for one vocabulary item.
// NextReview drives the due-card query; the review loop that advances
// interval/ease lives client-side.
type FlashcardProgress struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index:idx_flashcard_user_review"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Term        string    `json:"term" gorm:"not null;size:200"`
	Translation string    `json:"translation" gorm:"size:500"`
	LanguageID  uint      `json:"language_id" gorm:"index"`
	Interval    int       `json:"interval" gorm:"default:1"` // days
	Ease        float64   `json:"ease" gorm:"default:2.5"`
	Repetitions int       `json:"repetitions" gorm:"default:0"`
	NextReview  time.Time `json:"next_review" gorm:"not null;index:idx_flashcard_user_review"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FlashcardProgress) TableName() string {
	return "flashcard_progresses"
}
