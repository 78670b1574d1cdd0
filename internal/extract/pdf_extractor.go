// Package extract pulls the text layer out of uploaded PDF documents so
// claims carry searchable content alongside the stored binary.
package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// maxPages caps how much of a document gets extracted; claim documents are
// short and anything past this is noise.
const maxPages = 20

// PDFExtractor extracts text from PDF files via mupdf
type PDFExtractor struct {
	logger *zap.Logger
}

// NewPDFExtractor creates a new extractor
func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// SupportsContentType reports whether the extractor handles the upload
func (e *PDFExtractor) SupportsContentType(contentType string) bool {
	return strings.Contains(contentType, "pdf")
}

// ExtractText reads the PDF at path and returns its concatenated page text.
// Scanned documents without a text layer yield an empty string, not an
// error.
func (e *PDFExtractor) ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("PDF file not found: %s", path)
	}

	doc, err := fitz.New(path)
	if err != nil {
		e.logger.Error("Failed to open PDF", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("Failed to extract page text",
				zap.String("path", path),
				zap.Int("page", i),
				zap.Error(err))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
