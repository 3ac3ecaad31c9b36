package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// minSourceTextChars is the smallest extracted text worth generating
// questions from.
const minSourceTextChars = 100

const defaultQuestionCount = 10

// QuestionService runs the generate pipeline: read stored text, call
// Gemini, normalize the raw output, validate and persist the records.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GenerateResponse, error)
}

type questionService struct {
	contentRepo  repository.ContentRepository
	questionRepo repository.QuestionRepository
	gemini       GeminiService
	normalizer   *ResponseNormalizer
}

func NewQuestionService(
	contentRepo repository.ContentRepository,
	questionRepo repository.QuestionRepository,
	gemini GeminiService,
	normalizer *ResponseNormalizer,
) QuestionService {
	return &questionService{
		contentRepo:  contentRepo,
		questionRepo: questionRepo,
		gemini:       gemini,
		normalizer:   normalizer,
	}
}

func (s *questionService) GenerateQuestions(ctx context.Context, req dto.GenerateQuestionsRequest) (*dto.GenerateResponse, error) {
	if !s.gemini.Enabled() {
		return nil, ErrAIUnavailable
	}

	difficulty := model.DifficultyMedium
	if req.Difficulty != "" {
		var err error
		difficulty, err = model.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	count := req.Count
	if count == 0 {
		count = defaultQuestionCount
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}

	content, err := s.contentRepo.FindByID(req.ContentID)
	if err != nil {
		log.Warn().Err(err).Str("contentID", req.ContentID).Msg("Content not found for generation")
		return nil, fmt.Errorf("%w: content %s", ErrNotFound, req.ContentID)
	}
	if len(content.ExtractedText) < minSourceTextChars {
		return nil, fmt.Errorf("%w: text too short to generate meaningful questions", ErrInvalidInput)
	}

	raw, err := s.gemini.GenerateRawQuestions(ctx, content.ExtractedText, difficulty, count)
	if err != nil {
		return nil, err
	}

	candidates, err := s.normalizer.Normalize(raw, difficulty)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	questions, err := validateCandidates(content.ID, candidates)
	if err != nil {
		return nil, err
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Str("contentID", content.ID).Msg("Failed to persist generated questions")
		return nil, err
	}

	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	// The model makes no exact-count promise; report what was produced.
	log.Info().
		Str("contentID", content.ID).
		Str("difficulty", string(difficulty)).
		Int("requested", count).
		Int("generated", len(questions)).
		Msg("Questions generated and stored")

	return &dto.GenerateResponse{
		ContentID:      content.ID,
		Difficulty:     string(difficulty),
		GeneratedCount: len(questions),
		QuestionIDs:    ids,
	}, nil
}

// validateCandidates enforces the question-record invariants before
// persistence: non-empty question and options, a valid answer letter, a
// valid difficulty label. One bad candidate fails the whole batch, matching
// the normalizer's all-or-nothing policy.
func validateCandidates(contentID string, candidates []QuestionCandidate) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(candidates))
	for i, cand := range candidates {
		if cand.Question == "" {
			return nil, fmt.Errorf("%w: item %d: empty question text", ErrUnparsableResponse, i)
		}
		for _, letter := range model.AnswerLetters {
			if cand.Options[string(letter)] == "" {
				return nil, fmt.Errorf("%w: item %d: empty option %s", ErrUnparsableResponse, i, letter)
			}
		}
		correct, err := model.ParseAnswerLetter(cand.CorrectAnswer)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnparsableResponse, i, err)
		}
		difficulty, err := model.ParseDifficulty(cand.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnparsableResponse, i, err)
		}
		questions = append(questions, model.Question{
			ContentID:     contentID,
			Difficulty:    difficulty,
			Question:      cand.Question,
			OptionA:       cand.Options["A"],
			OptionB:       cand.Options["B"],
			OptionC:       cand.Options["C"],
			OptionD:       cand.Options["D"],
			CorrectAnswer: correct,
		})
	}
	return questions, nil
}
