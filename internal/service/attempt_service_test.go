package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"gorm.io/gorm"
)

func newAttemptService(t *testing.T) (AttemptService, repository.AttemptRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	attemptRepo := repository.NewAttemptRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	return NewAttemptService(attemptRepo, questionRepo), attemptRepo, db
}

// TestSubmitAnswerCorrectCaseInsensitive verifies a lowercase letter
// matching the stored answer scores as correct and leaks nothing.
func TestSubmitAnswerCorrectCaseInsensitive(t *testing.T) {
	svc, attemptRepo, db := newAttemptService(t)
	q := seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerB)

	resp, err := svc.SubmitAnswer(dto.SubmitAnswerRequest{
		UserID:         "user-1",
		QuestionID:     q.ID,
		SelectedAnswer: "b",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !resp.IsCorrect {
		t.Errorf("expected is_correct=true for matching letter")
	}
	if resp.CorrectAnswer != nil {
		t.Errorf("correct answer must not be revealed on a correct submission, got %q", *resp.CorrectAnswer)
	}
	if resp.AttemptID == "" {
		t.Errorf("expected a generated attempt id")
	}

	attempts, err := attemptRepo.FindByUserID("user-1")
	if err != nil || len(attempts) != 1 {
		t.Fatalf("expected one persisted attempt, got %d (err %v)", len(attempts), err)
	}
	if !attempts[0].IsCorrect {
		t.Errorf("persisted attempt should be marked correct")
	}
}

// TestSubmitAnswerIncorrectRevealsAnswer verifies a mismatch scores as
// incorrect and carries the true answer.
func TestSubmitAnswerIncorrectRevealsAnswer(t *testing.T) {
	svc, _, db := newAttemptService(t)
	q := seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerB)

	resp, err := svc.SubmitAnswer(dto.SubmitAnswerRequest{
		UserID:         "user-1",
		QuestionID:     q.ID,
		SelectedAnswer: "C",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.IsCorrect {
		t.Errorf("expected is_correct=false for mismatched letter")
	}
	if resp.CorrectAnswer == nil || *resp.CorrectAnswer != "B" {
		t.Errorf("expected revealed correct answer B, got %v", resp.CorrectAnswer)
	}
}

// TestSubmitAnswerUnknownQuestion verifies an unknown question id maps to
// ErrNotFound.
func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	svc, _, _ := newAttemptService(t)

	_, err := svc.SubmitAnswer(dto.SubmitAnswerRequest{
		UserID:         "user-1",
		QuestionID:     "no-such-question",
		SelectedAnswer: "A",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserAttemptsHistory(t *testing.T) {
	svc, _, db := newAttemptService(t)
	q := seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerB)

	for _, answer := range []string{"B", "C"} {
		if _, err := svc.SubmitAnswer(dto.SubmitAnswerRequest{
			UserID:         "user-1",
			QuestionID:     q.ID,
			SelectedAnswer: answer,
		}); err != nil {
			t.Fatalf("failed to submit answer %q: %v", answer, err)
		}
	}

	resp, err := svc.GetUserAttempts("user-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Count != 2 || len(resp.Attempts) != 2 {
		t.Fatalf("expected 2 attempts, got count=%d len=%d", resp.Count, len(resp.Attempts))
	}
	for _, a := range resp.Attempts {
		if a.QuestionID != q.ID || a.AttemptID == "" {
			t.Errorf("unexpected attempt summary: %+v", a)
		}
	}

	other, err := svc.GetUserAttempts("user-2")
	if err != nil {
		t.Fatalf("expected success for user without attempts, got %v", err)
	}
	if other.Count != 0 {
		t.Errorf("expected empty history for user-2, got %d", other.Count)
	}
}

func TestGetUserAttemptsMissingUserID(t *testing.T) {
	svc, _, _ := newAttemptService(t)

	if _, err := svc.GetUserAttempts(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// TestGetAttemptDetail verifies the stored attempt comes back with its
// question loaded, revealing the correct answer only when wrong.
func TestGetAttemptDetail(t *testing.T) {
	svc, _, db := newAttemptService(t)
	q := seedQuestion(t, db, "content-1", model.DifficultyMedium, model.AnswerB)

	submitted, err := svc.SubmitAnswer(dto.SubmitAnswerRequest{
		UserID:         "user-1",
		QuestionID:     q.ID,
		SelectedAnswer: "C",
	})
	if err != nil {
		t.Fatalf("failed to submit answer: %v", err)
	}

	detail, err := svc.GetAttempt(submitted.AttemptID)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if detail.QuestionID != q.ID || detail.Question != q.Question {
		t.Errorf("expected question to be loaded, got %+v", detail)
	}
	if len(detail.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(detail.Options))
	}
	if detail.IsCorrect {
		t.Errorf("expected is_correct=false")
	}
	if detail.CorrectAnswer == nil || *detail.CorrectAnswer != "B" {
		t.Errorf("expected revealed correct answer B, got %v", detail.CorrectAnswer)
	}
}

func TestGetAttemptUnknown(t *testing.T) {
	svc, _, _ := newAttemptService(t)

	if _, err := svc.GetAttempt("no-such-attempt"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
