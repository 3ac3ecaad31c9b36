package dto

// GenerateQuestionsRequest is the JSON body for POST /generate.
type GenerateQuestionsRequest struct {
	ContentID  string `json:"content_id" binding:"required"`
	Difficulty string `json:"difficulty"` // easy|medium|hard, defaults to medium
	Count      int    `json:"count"`      // defaults to 10
}

// SubmitAnswerRequest is the JSON body for POST /submit.
type SubmitAnswerRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedAnswer string `json:"selected_answer" binding:"required"`
}
