package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// maxPromptTextChars caps how much of the source text is embedded in the
// prompt sent to the model.
const maxPromptTextChars = 3500

var difficultyInstructions = map[model.Difficulty]string{
	model.DifficultyEasy:   "Focus on basic definitions and simple recall. Questions should be straightforward.",
	model.DifficultyMedium: "Test understanding and application. Questions should require connecting concepts.",
	model.DifficultyHard:   "Test deep analysis and synthesis. Questions should be challenging and thought-provoking.",
}

// GeminiService builds question-generation prompts and invokes Gemini.
// One call per request; no retry, no streaming, no batching.
type GeminiService interface {
	Enabled() bool
	// GenerateRawQuestions returns the model's raw text output for the
	// caller to normalize. Fails with ErrAIUnavailable when no API key was
	// configured and ErrEmptyResponse when the model returns no text.
	GenerateRawQuestions(ctx context.Context, text string, difficulty model.Difficulty, count int) (string, error)
}

type geminiService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{cfg: cfg}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel(cfg.GeminiModel)
	log.Info().Str("model", cfg.GeminiModel).Msg("Gemini client initialized")
	return &geminiService{model: m, cfg: cfg}, nil
}

func (s *geminiService) Enabled() bool {
	return s.model != nil
}

func (s *geminiService) GenerateRawQuestions(ctx context.Context, text string, difficulty model.Difficulty, count int) (string, error) {
	if s.model == nil {
		return "", ErrAIUnavailable
	}

	prompt := buildQuestionPrompt(text, difficulty, count)
	log.Info().
		Str("difficulty", string(difficulty)).
		Int("count", count).
		Int("prompt_text_chars", min(len(text), maxPromptTextChars)).
		Msg("Generating questions with Gemini")

	// No deadline on the upstream call: a hung model call blocks this
	// request until the transport gives up.
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during question generation")
		return "", fmt.Errorf("AI generation failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response")
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}

	log.Info().Int("response_chars", b.Len()).Msg("Received Gemini response")
	return b.String(), nil
}

func buildQuestionPrompt(text string, difficulty model.Difficulty, count int) string {
	sample := text
	if len(sample) > maxPromptTextChars {
		sample = sample[:maxPromptTextChars]
	}

	return fmt.Sprintf(`Generate %d multiple-choice questions from this text.

Difficulty Level: %s
%s

Text:
%s

You must return ONLY a JSON array with this structure:
[
  {"question": "What is X?", "options": {"A": "opt1", "B": "opt2", "C": "opt3", "D": "opt4"}, "correct_answer": "A", "difficulty": "%s"}
]

Generate exactly %d questions. Return ONLY the JSON array, nothing else.`,
		count, difficulty, difficultyInstructions[difficulty], sample, difficulty, count)
}
