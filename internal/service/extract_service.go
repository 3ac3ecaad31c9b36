package service

import (
	"bytes"
	"fmt"
	"io"

	pdf "github.com/ledongthuc/pdf"
)

// TextExtractor turns an uploaded PDF into plain text plus a page count.
type TextExtractor interface {
	ExtractPDF(data []byte) (text string, pageCount int, err error)
}

type pdfTextExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &pdfTextExtractor{}
}

func (e *pdfTextExtractor) ExtractPDF(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	// Sniff the magic header before handing the bytes to the parser.
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", 0, fmt.Errorf("%w: file is missing the %%PDF header", ErrInvalidInput)
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("pdf reader: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", 0, fmt.Errorf("pdf plaintext: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", 0, fmt.Errorf("pdf read: %w", err)
	}
	return string(b), r.NumPage(), nil
}
