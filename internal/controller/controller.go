package controller

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	contentSvc  service.ContentService
	questionSvc service.QuestionService
	quizSvc     service.QuizService
	attemptSvc  service.AttemptService
	geminiSvc   service.GeminiService
}

func NewController(
	contentSvc service.ContentService,
	questionSvc service.QuestionService,
	quizSvc service.QuizService,
	attemptSvc service.AttemptService,
	geminiSvc service.GeminiService,
) *Controller {
	return &Controller{
		contentSvc:  contentSvc,
		questionSvc: questionSvc,
		quizSvc:     quizSvc,
		attemptSvc:  attemptSvc,
		geminiSvc:   geminiSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", ctrl.HomeHandler)
	router.GET("/health", ctrl.HealthHandler)
	router.POST("/upload", ctrl.UploadHandler)
	router.POST("/generate", ctrl.GenerateHandler)
	router.GET("/quiz", ctrl.QuizHandler)
	router.POST("/submit", ctrl.SubmitHandler)
	router.GET("/attempts", ctrl.AttemptHistoryHandler)
	router.GET("/attempts/:attempt_id", ctrl.AttemptDetailHandler)
}

// respondError maps the service failure taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 carrying the raw message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAIUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

// HomeHandler godoc
// @Summary Service info
// @Description Basic information about the service and whether AI generation is available
// @Tags system
// @Produce json
// @Success 200 {object} dto.ServiceInfoResponse
// @Router / [get]
func (ctrl *Controller) HomeHandler(c *gin.Context) {
	ai := "Disabled"
	if ctrl.geminiSvc.Enabled() {
		ai = "Gemini"
	}
	c.JSON(http.StatusOK, dto.ServiceInfoResponse{
		Service: "Interview Prep Platform - AI Powered",
		Version: "3.0",
		AI:      ai,
		Status:  "running",
	})
}

// HealthHandler godoc
// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	gemini := "disabled"
	if ctrl.geminiSvc.Enabled() {
		gemini = "enabled"
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy", Gemini: gemini})
}

// UploadHandler godoc
// @Summary Upload a PDF
// @Description Accepts a PDF (max 10MB), extracts its text and stores it as content for question generation
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Param user_id formData string true "Owning user id"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or user_id, wrong type, or too large"
// @Failure 500 {object} dto.ErrorResponse "Extraction or storage failure"
// @Router /upload [post]
func (ctrl *Controller) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No file provided"})
		return
	}
	userID := c.PostForm("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User ID required"})
		return
	}
	if fileHeader.Size > service.MaxUploadSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "File too large. Max 10MB"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	resp, err := ctrl.contentSvc.UploadPDF(userID, fileHeader.Filename, data)
	if err != nil {
		log.Warn().Err(err).Str("fileName", fileHeader.Filename).Msg("Upload rejected")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GenerateHandler godoc
// @Summary Generate questions for uploaded content
// @Description Calls Gemini to generate multiple-choice questions from stored text. The generated count may be fewer than requested.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Content id, optional difficulty (default medium) and count (default 10)"
// @Success 201 {object} dto.GenerateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing content_id, invalid difficulty, or text too short"
// @Failure 404 {object} dto.ErrorResponse "Content not found"
// @Failure 503 {object} dto.ErrorResponse "Gemini API not configured"
// @Failure 500 {object} dto.ErrorResponse "Generation or parsing failure"
// @Router /generate [post]
func (ctrl *Controller) GenerateHandler(c *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind GenerateQuestionsRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.questionSvc.GenerateQuestions(c.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("contentID", req.ContentID).Msg("Question generation failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// QuizHandler godoc
// @Summary Get a randomized quiz
// @Description Returns a uniform random sample of stored questions for a content id, optionally filtered by difficulty. Correct answers are not included.
// @Tags quiz
// @Produce json
// @Param content_id query string true "Content ID"
// @Param difficulty query string false "easy, medium or hard"
// @Param count query int false "Number of questions (default 10)"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing content_id or invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "No questions found for this content"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz [get]
func (ctrl *Controller) QuizHandler(c *gin.Context) {
	contentID := c.Query("content_id")
	if contentID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "content_id required"})
		return
	}
	difficulty := c.Query("difficulty")

	count := 0
	if countStr := c.Query("count"); countStr != "" {
		val, err := strconv.Atoi(countStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid count format"})
			return
		}
		count = val
	}

	resp, err := ctrl.quizSvc.GetQuiz(contentID, difficulty, count)
	if err != nil {
		log.Warn().Err(err).Str("contentID", contentID).Msg("Quiz retrieval failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitHandler godoc
// @Summary Submit an answer
// @Description Records an answer attempt and scores it case-insensitively. The correct answer is revealed only when the submission is wrong.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "User id, question id and selected answer"
// @Success 200 {object} dto.SubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submit [post]
func (ctrl *Controller) SubmitHandler(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	resp, err := ctrl.attemptSvc.SubmitAnswer(req)
	if err != nil {
		log.Warn().Err(err).Str("questionID", req.QuestionID).Msg("Answer submission failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AttemptHistoryHandler godoc
// @Summary Get a user's attempt history
// @Description Returns all recorded attempts for a user, newest first
// @Tags quiz
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} dto.AttemptHistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Missing user_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [get]
func (ctrl *Controller) AttemptHistoryHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id required"})
		return
	}

	resp, err := ctrl.attemptSvc.GetUserAttempts(userID)
	if err != nil {
		log.Warn().Err(err).Str("userID", userID).Msg("Attempt history retrieval failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AttemptDetailHandler godoc
// @Summary Get one attempt
// @Description Returns a single attempt with its question. The correct answer is included only when the attempt was wrong.
// @Tags quiz
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailResponse
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts/{attempt_id} [get]
func (ctrl *Controller) AttemptDetailHandler(c *gin.Context) {
	resp, err := ctrl.attemptSvc.GetAttempt(c.Param("attempt_id"))
	if err != nil {
		log.Warn().Err(err).Str("attemptID", c.Param("attempt_id")).Msg("Attempt retrieval failed")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
