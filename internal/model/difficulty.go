package model

import (
	"fmt"
	"strings"
)

// Difficulty is the closed set of question difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty label at the API boundary.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("invalid difficulty %q (must be easy, medium or hard)", s)
}

// AnswerLetter is the closed set of option keys for a question.
type AnswerLetter string

const (
	AnswerA AnswerLetter = "A"
	AnswerB AnswerLetter = "B"
	AnswerC AnswerLetter = "C"
	AnswerD AnswerLetter = "D"
)

// AnswerLetters lists all valid option keys in order.
var AnswerLetters = []AnswerLetter{AnswerA, AnswerB, AnswerC, AnswerD}

// ParseAnswerLetter validates an answer letter, case-insensitively.
func ParseAnswerLetter(s string) (AnswerLetter, error) {
	switch AnswerLetter(strings.ToUpper(strings.TrimSpace(s))) {
	case AnswerA:
		return AnswerA, nil
	case AnswerB:
		return AnswerB, nil
	case AnswerC:
		return AnswerC, nil
	case AnswerD:
		return AnswerD, nil
	}
	return "", fmt.Errorf("invalid answer letter %q (must be A, B, C or D)", s)
}
