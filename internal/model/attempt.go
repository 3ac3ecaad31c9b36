package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is one recorded answer submission against a question. Append-only.
type Attempt struct {
	ID             string         `gorm:"type:uuid;primarykey" json:"attempt_id"`
	UserID         string         `gorm:"not null;index" json:"user_id"`
	QuestionID     string         `gorm:"not null;index" json:"question_id"`
	Question       Question       `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	SelectedAnswer string         `gorm:"not null" json:"selected_answer"`
	IsCorrect      bool           `json:"is_correct"`
	AttemptedAt    time.Time      `gorm:"autoCreateTime" json:"attempted_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
