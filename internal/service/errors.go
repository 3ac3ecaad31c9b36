package service

import "errors"

// Failure kinds surfaced by the services. The controller maps these onto
// HTTP status codes; everything else falls through as a 500.
var (
	// ErrEmptyResponse means the model returned no usable text at all.
	ErrEmptyResponse = errors.New("AI returned an empty response")

	// ErrUnparsableResponse means no structured question list could be
	// recovered from the model output after every extraction attempt.
	ErrUnparsableResponse = errors.New("could not parse questions from AI response")

	// ErrAIUnavailable means the Gemini client was never configured.
	ErrAIUnavailable = errors.New("gemini API not configured")

	// ErrInvalidInput covers bad request fields, wrong file types and
	// oversized uploads.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound covers unknown content and question ids.
	ErrNotFound = errors.New("not found")
)
