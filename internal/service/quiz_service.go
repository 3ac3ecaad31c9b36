package service

import (
	"fmt"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService serves randomized question subsets for a piece of content.
type QuizService interface {
	// GetQuiz samples up to count questions for contentID. difficulty may
	// be empty for no filter. The sample is uniform with no fixed seed, so
	// two calls may return different sets.
	GetQuiz(contentID, difficulty string, count int) (*dto.QuizResponse, error)
}

type quizService struct {
	questionRepo repository.QuestionRepository
}

func NewQuizService(questionRepo repository.QuestionRepository) QuizService {
	return &quizService{questionRepo: questionRepo}
}

func (s *quizService) GetQuiz(contentID, difficulty string, count int) (*dto.QuizResponse, error) {
	if contentID == "" {
		return nil, fmt.Errorf("%w: content_id required", ErrInvalidInput)
	}

	var difficultyFilter *model.Difficulty
	if difficulty != "" {
		d, err := model.ParseDifficulty(difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		difficultyFilter = &d
	}
	if count <= 0 {
		count = defaultQuestionCount
	}

	questions, err := s.questionRepo.FindRandomByContentID(contentID, difficultyFilter, count)
	if err != nil {
		log.Error().Err(err).Str("contentID", contentID).Msg("Failed to fetch quiz questions")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no questions found, generate questions first", ErrNotFound)
	}

	quizQuestions := make([]dto.QuizQuestion, len(questions))
	for i, q := range questions {
		quizQuestions[i] = dto.QuizQuestion{
			QuestionID: q.ID,
			Difficulty: string(q.Difficulty),
			Question:   q.Question,
			Options:    q.Options(),
		}
	}

	// Echo the filter back as null when none was given.
	var difficultyEcho *string
	if difficulty != "" {
		difficultyEcho = &difficulty
	}

	return &dto.QuizResponse{
		ContentID:  contentID,
		Difficulty: difficultyEcho,
		Count:      len(quizQuestions),
		Questions:  quizQuestions,
	}, nil
}
