package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question is one validated multiple-choice question. Immutable once stored.
type Question struct {
	ID            string         `gorm:"type:uuid;primarykey" json:"question_id"`
	ContentID     string         `gorm:"not null;index" json:"content_id"`
	Difficulty    Difficulty     `gorm:"not null" json:"difficulty"`
	Question      string         `gorm:"type:text;not null" json:"question"`
	OptionA       string         `gorm:"not null" json:"option_a"`
	OptionB       string         `gorm:"not null" json:"option_b"`
	OptionC       string         `gorm:"not null" json:"option_c"`
	OptionD       string         `gorm:"not null" json:"option_d"`
	CorrectAnswer AnswerLetter   `gorm:"not null" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Options returns the four labeled options as a map keyed by letter.
func (q *Question) Options() map[string]string {
	return map[string]string{
		"A": q.OptionA,
		"B": q.OptionB,
		"C": q.OptionC,
		"D": q.OptionD,
	}
}
