package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService records answer submissions, scores them against the
// stored correct letter and serves the resulting history.
type AttemptService interface {
	SubmitAnswer(req dto.SubmitAnswerRequest) (*dto.SubmitResponse, error)
	// GetAttempt returns one attempt with its question loaded.
	GetAttempt(attemptID string) (*dto.AttemptDetailResponse, error)
	// GetUserAttempts returns a user's attempts, newest first.
	GetUserAttempts(userID string) (*dto.AttemptHistoryResponse, error)
}

type attemptService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
}

func NewAttemptService(attemptRepo repository.AttemptRepository, questionRepo repository.QuestionRepository) AttemptService {
	return &attemptService{
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
	}
}

func (s *attemptService) SubmitAnswer(req dto.SubmitAnswerRequest) (*dto.SubmitResponse, error) {
	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		log.Warn().Err(err).Str("questionID", req.QuestionID).Msg("Question not found for submission")
		return nil, fmt.Errorf("%w: question %s", ErrNotFound, req.QuestionID)
	}

	isCorrect := strings.EqualFold(req.SelectedAnswer, string(question.CorrectAnswer))

	attempt := model.Attempt{
		UserID:         req.UserID,
		QuestionID:     question.ID,
		SelectedAnswer: req.SelectedAnswer,
		IsCorrect:      isCorrect,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Msg("Failed to persist attempt")
		return nil, err
	}

	resp := dto.SubmitResponse{
		AttemptID: attempt.ID,
		IsCorrect: isCorrect,
	}
	// Reveal the right answer only when the user got it wrong.
	if !isCorrect {
		correct := string(question.CorrectAnswer)
		resp.CorrectAnswer = &correct
	}
	return &resp, nil
}

func (s *attemptService) GetAttempt(attemptID string) (*dto.AttemptDetailResponse, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attempt %s", ErrNotFound, attemptID)
		}
		log.Error().Err(err).Str("attemptID", attemptID).Msg("Failed to load attempt")
		return nil, err
	}

	resp := dto.AttemptDetailResponse{
		AttemptID:      attempt.ID,
		UserID:         attempt.UserID,
		QuestionID:     attempt.QuestionID,
		Question:       attempt.Question.Question,
		Options:        attempt.Question.Options(),
		SelectedAnswer: attempt.SelectedAnswer,
		IsCorrect:      attempt.IsCorrect,
		AttemptedAt:    attempt.AttemptedAt,
	}
	// Same disclosure rule as submission.
	if !attempt.IsCorrect {
		correct := string(attempt.Question.CorrectAnswer)
		resp.CorrectAnswer = &correct
	}
	return &resp, nil
}

func (s *attemptService) GetUserAttempts(userID string) (*dto.AttemptHistoryResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id required", ErrInvalidInput)
	}

	attempts, err := s.attemptRepo.FindByUserID(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load attempt history")
		return nil, err
	}

	summaries := make([]dto.AttemptSummary, len(attempts))
	for i, a := range attempts {
		summaries[i] = dto.AttemptSummary{
			AttemptID:      a.ID,
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      a.IsCorrect,
			AttemptedAt:    a.AttemptedAt,
		}
	}

	return &dto.AttemptHistoryResponse{
		UserID:   userID,
		Count:    len(summaries),
		Attempts: summaries,
	}, nil
}
