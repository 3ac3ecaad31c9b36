package service

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/lshigami/Quokka/internal/model"
	"github.com/rs/zerolog/log"
)

// QuestionCandidate is one question as extracted from raw model output,
// before any validation. Untrusted external data.
type QuestionCandidate struct {
	Question      string
	Options       map[string]string
	CorrectAnswer string
	Difficulty    string
}

// arrayOfObjectsPattern finds the first bracketed array of objects anywhere
// in the text, newlines included. Last-resort recovery when the model wraps
// its JSON in prose.
var arrayOfObjectsPattern = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)

// ResponseNormalizer converts raw Gemini output into question candidates.
//
// The fallback chain, in order: strip markdown fences, decode as a JSON
// array (or an object wrapping a "questions" array), then scan for a bare
// array-of-objects substring. If nothing works the raw and cleaned text are
// written to DebugFile for offline inspection and the call fails with
// ErrUnparsableResponse.
//
// A missing required field on any item aborts the whole call; partial
// lists are never returned. The number of candidates may be fewer than the
// count that was requested from the model.
type ResponseNormalizer struct {
	DebugFile string
}

func NewResponseNormalizer() *ResponseNormalizer {
	return &ResponseNormalizer{DebugFile: "gemini_debug_response.txt"}
}

// Normalize parses raw model text into candidates, defaulting each item's
// difficulty to requested when the model omitted it.
func (n *ResponseNormalizer) Normalize(raw string, requested model.Difficulty) ([]QuestionCandidate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyResponse
	}

	cleaned := stripCodeFences(trimmed)

	items, ok := decodeCandidateList(cleaned)
	if !ok {
		if match := arrayOfObjectsPattern.FindString(cleaned); match != "" {
			items, ok = decodeCandidateList(match)
			if ok {
				log.Info().Int("count", len(items)).Msg("Recovered question array via bracket-pattern fallback")
			}
		}
	}
	if !ok {
		n.writeDebugArtifact(trimmed, cleaned)
		return nil, ErrUnparsableResponse
	}

	candidates := make([]QuestionCandidate, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrUnparsableResponse, i)
		}
		cand, err := extractCandidate(obj, requested)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrUnparsableResponse, i, err)
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// stripCodeFences returns the content of the first ```json fenced block,
// else the first generic ``` block, else the text unchanged.
func stripCodeFences(s string) string {
	for _, marker := range []string{"```json", "```"} {
		if i := strings.Index(s, marker); i != -1 {
			rest := s[i+len(marker):]
			if j := strings.Index(rest, "```"); j != -1 {
				rest = rest[:j]
			}
			return strings.TrimSpace(rest)
		}
	}
	return s
}

// decodeCandidateList accepts either a top-level JSON array or an object
// carrying a "questions" array.
func decodeCandidateList(s string) ([]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		if qs, ok := t["questions"].([]any); ok {
			return qs, true
		}
	}
	return nil, false
}

func extractCandidate(obj map[string]any, requested model.Difficulty) (QuestionCandidate, error) {
	question, ok := stringField(obj, "question")
	if !ok {
		return QuestionCandidate{}, fmt.Errorf("missing field %q", "question")
	}

	rawOptions, ok := obj["options"].(map[string]any)
	if !ok {
		return QuestionCandidate{}, fmt.Errorf("missing field %q", "options")
	}
	options := make(map[string]string, len(model.AnswerLetters))
	for _, letter := range model.AnswerLetters {
		opt, ok := rawOptions[string(letter)].(string)
		if !ok {
			return QuestionCandidate{}, fmt.Errorf("missing option %q", letter)
		}
		options[string(letter)] = opt
	}

	correct, ok := stringField(obj, "correct_answer")
	if !ok {
		return QuestionCandidate{}, fmt.Errorf("missing field %q", "correct_answer")
	}

	difficulty := string(requested)
	if d, ok := stringField(obj, "difficulty"); ok && d != "" {
		difficulty = d
	}

	return QuestionCandidate{
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
		Difficulty:    difficulty,
	}, nil
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

func (n *ResponseNormalizer) writeDebugArtifact(original, cleaned string) {
	content := fmt.Sprintf("Original:\n%s\n\nCleaned:\n%s", original, cleaned)
	if err := os.WriteFile(n.DebugFile, []byte(content), 0o644); err != nil {
		log.Error().Err(err).Str("file", n.DebugFile).Msg("Failed to write debug artifact")
		return
	}
	log.Warn().Str("file", n.DebugFile).Msg("Saved unparsable AI response for debugging")
}
