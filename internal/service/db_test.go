package service

import (
	"testing"

	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory sqlite database with the full
// schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Content{}, &model.Question{}, &model.Attempt{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, contentID string, difficulty model.Difficulty, correct model.AnswerLetter) *model.Question {
	t.Helper()
	q := model.Question{
		ContentID:     contentID,
		Difficulty:    difficulty,
		Question:      "What does the text say?",
		OptionA:       "alpha",
		OptionB:       "bravo",
		OptionC:       "charlie",
		OptionD:       "delta",
		CorrectAnswer: correct,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return &q
}
