package dto

import "time"

// UploadResponse is returned by POST /upload on success.
type UploadResponse struct {
	ContentID  string `json:"content_id"`
	FileName   string `json:"file_name"`
	PageCount  int    `json:"page_count"`
	TextLength int    `json:"text_length"`
}

// GenerateResponse is returned by POST /generate on success. GeneratedCount
// may be less than the requested count; the model makes no exact-count
// guarantee and results are not padded or truncated.
type GenerateResponse struct {
	ContentID      string   `json:"content_id"`
	Difficulty     string   `json:"difficulty"`
	GeneratedCount int      `json:"generated_count"`
	QuestionIDs    []string `json:"question_ids"`
}

// QuizQuestion is one question served to a quiz taker. The correct answer
// is deliberately absent.
type QuizQuestion struct {
	QuestionID string            `json:"question_id"`
	Difficulty string            `json:"difficulty"`
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
}

// QuizResponse is returned by GET /quiz. Difficulty is null when the quiz
// was not filtered.
type QuizResponse struct {
	ContentID  string         `json:"content_id"`
	Difficulty *string        `json:"difficulty"`
	Count      int            `json:"count"`
	Questions  []QuizQuestion `json:"questions"`
}

// SubmitResponse is returned by POST /submit. CorrectAnswer is only
// populated when the submission was wrong.
type SubmitResponse struct {
	AttemptID     string  `json:"attempt_id"`
	IsCorrect     bool    `json:"is_correct"`
	CorrectAnswer *string `json:"correct_answer"`
}

// AttemptSummary is one row of a user's attempt history.
type AttemptSummary struct {
	AttemptID      string    `json:"attempt_id"`
	QuestionID     string    `json:"question_id"`
	SelectedAnswer string    `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	AttemptedAt    time.Time `json:"attempted_at"`
}

// AttemptHistoryResponse is returned by GET /attempts.
type AttemptHistoryResponse struct {
	UserID   string           `json:"user_id"`
	Count    int              `json:"count"`
	Attempts []AttemptSummary `json:"attempts"`
}

// AttemptDetailResponse is returned by GET /attempts/{attempt_id}.
// CorrectAnswer is only populated when the attempt was wrong.
type AttemptDetailResponse struct {
	AttemptID      string            `json:"attempt_id"`
	UserID         string            `json:"user_id"`
	QuestionID     string            `json:"question_id"`
	Question       string            `json:"question"`
	Options        map[string]string `json:"options"`
	SelectedAnswer string            `json:"selected_answer"`
	IsCorrect      bool              `json:"is_correct"`
	CorrectAnswer  *string           `json:"correct_answer"`
	AttemptedAt    time.Time         `json:"attempted_at"`
}

// ServiceInfoResponse is returned by GET /.
type ServiceInfoResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	AI      string `json:"ai"`
	Status  string `json:"status"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Gemini string `json:"gemini"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
