package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/dto"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"github.com/rs/zerolog/log"
)

// MaxUploadSize is the hard cap on uploaded PDF size.
const MaxUploadSize = 10 << 20 // 10MB

type ContentService interface {
	// UploadPDF validates and stores an uploaded PDF, extracts its text and
	// persists a Content record with status "processed".
	UploadPDF(userID, fileName string, data []byte) (*dto.UploadResponse, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
	extractor   TextExtractor
	uploadDir   string
}

func NewContentService(contentRepo repository.ContentRepository, extractor TextExtractor, cfg *config.Config) (ContentService, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", cfg.UploadDir, err)
	}
	return &contentService{
		contentRepo: contentRepo,
		extractor:   extractor,
		uploadDir:   cfg.UploadDir,
	}, nil
}

func (s *contentService) UploadPDF(userID, fileName string, data []byte) (*dto.UploadResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if fileName == "" {
		return nil, fmt.Errorf("%w: no file selected", ErrInvalidInput)
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return nil, fmt.Errorf("%w: only PDF files allowed", ErrInvalidInput)
	}
	if len(data) > MaxUploadSize {
		return nil, fmt.Errorf("%w: file too large, max 10MB", ErrInvalidInput)
	}

	text, pageCount, err := s.extractor.ExtractPDF(data)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("Failed to extract text from PDF")
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	contentID := uuid.NewString()
	safeName := filepath.Base(fileName)
	filePath := filepath.Join(s.uploadDir, fmt.Sprintf("%s_%s", contentID, safeName))
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		log.Error().Err(err).Str("path", filePath).Msg("Failed to save uploaded file")
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	content := model.Content{
		ID:            contentID,
		UserID:        userID,
		FileName:      safeName,
		FilePath:      filePath,
		ExtractedText: text,
		PageCount:     pageCount,
		Status:        "processed",
	}
	if err := s.contentRepo.Create(&content); err != nil {
		log.Error().Err(err).Msg("Failed to persist content record")
		return nil, err
	}

	log.Info().
		Str("contentID", content.ID).
		Str("fileName", safeName).
		Int("pages", pageCount).
		Int("textLength", len(text)).
		Msg("Content uploaded and processed")

	var resp dto.UploadResponse
	copier.Copy(&resp, &content)
	resp.ContentID = content.ID
	resp.TextLength = len(text)
	return &resp, nil
}
