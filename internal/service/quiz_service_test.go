package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"gorm.io/gorm"
)

func newQuizService(t *testing.T) (QuizService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuizService(repository.NewQuestionRepository(db)), db
}

func TestGetQuizSamplesRequestedCount(t *testing.T) {
	svc, db := newQuizService(t)
	for i := 0; i < 5; i++ {
		seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerA)
	}

	resp, err := svc.GetQuiz("content-1", "", 3)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Count != 3 || len(resp.Questions) != 3 {
		t.Fatalf("expected 3 questions, got count=%d len=%d", resp.Count, len(resp.Questions))
	}
	if resp.Difficulty != nil {
		t.Errorf("expected null difficulty for an unfiltered quiz, got %q", *resp.Difficulty)
	}
	for _, q := range resp.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %s: expected 4 options, got %d", q.QuestionID, len(q.Options))
		}
	}
}

func TestGetQuizFiltersByDifficulty(t *testing.T) {
	svc, db := newQuizService(t)
	seedQuestion(t, db, "content-1", model.DifficultyEasy, model.AnswerA)
	seedQuestion(t, db, "content-1", model.DifficultyEasy, model.AnswerB)
	seedQuestion(t, db, "content-1", model.DifficultyHard, model.AnswerC)

	resp, err := svc.GetQuiz("content-1", "easy", 10)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("expected 2 easy questions, got %d", len(resp.Questions))
	}
	if resp.Difficulty == nil || *resp.Difficulty != "easy" {
		t.Errorf("expected difficulty easy echoed back, got %v", resp.Difficulty)
	}
	for _, q := range resp.Questions {
		if q.Difficulty != "easy" {
			t.Errorf("expected easy question, got %q", q.Difficulty)
		}
	}
}

func TestGetQuizReturnsFewerWhenShort(t *testing.T) {
	svc, db := newQuizService(t)
	seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerA)

	resp, err := svc.GetQuiz("content-1", "", 10)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(resp.Questions) != 1 {
		t.Fatalf("expected the single stored question, got %d", len(resp.Questions))
	}
}

func TestGetQuizNoQuestions(t *testing.T) {
	svc, _ := newQuizService(t)

	if _, err := svc.GetQuiz("content-without-questions", "", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetQuizInvalidDifficulty(t *testing.T) {
	svc, _ := newQuizService(t)

	if _, err := svc.GetQuiz("content-1", "impossible", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetQuizMissingContentID(t *testing.T) {
	svc, _ := newQuizService(t)

	if _, err := svc.GetQuiz("", "", 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
