package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/model"
	"github.com/lshigami/Quokka/internal/repository"
	"gorm.io/gorm"
)

// stubExtractor returns canned extraction results without parsing anything.
type stubExtractor struct {
	text  string
	pages int
	err   error
}

func (s *stubExtractor) ExtractPDF(data []byte) (string, int, error) {
	if s.err != nil {
		return "", 0, s.err
	}
	return s.text, s.pages, nil
}

func newContentService(t *testing.T, extractor TextExtractor) (ContentService, *gorm.DB, string) {
	t.Helper()
	db := newTestDB(t)
	uploadDir := t.TempDir()
	svc, err := NewContentService(
		repository.NewContentRepository(db),
		extractor,
		&config.Config{UploadDir: uploadDir},
	)
	if err != nil {
		t.Fatalf("failed to build content service: %v", err)
	}
	return svc, db, uploadDir
}

func TestUploadPDFMissingUserID(t *testing.T) {
	svc, _, _ := newContentService(t, &stubExtractor{text: "some text", pages: 1})

	_, err := svc.UploadPDF("", "notes.pdf", []byte("%PDF-1.4"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user_id, got %v", err)
	}
}

func TestUploadPDFRejectsNonPDFExtension(t *testing.T) {
	svc, _, _ := newContentService(t, &stubExtractor{text: "some text", pages: 1})

	_, err := svc.UploadPDF("user-1", "notes.txt", []byte("%PDF-1.4"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-pdf extension, got %v", err)
	}
}

func TestUploadPDFRejectsOversizedFile(t *testing.T) {
	svc, _, _ := newContentService(t, &stubExtractor{text: "some text", pages: 1})

	_, err := svc.UploadPDF("user-1", "notes.pdf", make([]byte, MaxUploadSize+1))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized file, got %v", err)
	}
}

func TestUploadPDFExtractionFailurePropagates(t *testing.T) {
	svc, db, _ := newContentService(t, &stubExtractor{err: ErrInvalidInput})

	_, err := svc.UploadPDF("user-1", "notes.pdf", []byte("not really a pdf"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected extraction error to propagate, got %v", err)
	}

	var count int64
	db.Model(&model.Content{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no content row after failed extraction, got %d", count)
	}
}

func TestUploadPDFPersistsProcessedContent(t *testing.T) {
	extracted := "the extracted body of the document"
	svc, db, uploadDir := newContentService(t, &stubExtractor{text: extracted, pages: 4})
	data := []byte("%PDF-1.4 tiny but valid enough")

	resp, err := svc.UploadPDF("user-1", "notes.pdf", data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.ContentID == "" {
		t.Fatalf("expected a generated content id")
	}
	if resp.FileName != "notes.pdf" || resp.PageCount != 4 || resp.TextLength != len(extracted) {
		t.Errorf("unexpected response: %+v", resp)
	}

	var content model.Content
	if err := db.First(&content, "id = ?", resp.ContentID).Error; err != nil {
		t.Fatalf("failed to read persisted content: %v", err)
	}
	if content.Status != "processed" {
		t.Errorf("expected status processed, got %q", content.Status)
	}
	if content.UserID != "user-1" || content.ExtractedText != extracted {
		t.Errorf("unexpected persisted content: %+v", content)
	}

	saved, err := os.ReadFile(filepath.Join(uploadDir, resp.ContentID+"_notes.pdf"))
	if err != nil {
		t.Fatalf("expected uploaded file on disk: %v", err)
	}
	if !bytes.Equal(saved, data) {
		t.Errorf("saved file differs from uploaded bytes")
	}
}
