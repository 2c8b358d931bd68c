// Package pdf extracts plain text from PDF uploads.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// MaxPages caps how many pages are extracted from a single PDF.
const MaxPages = 50

// pdfSignature is the magic prefix every valid PDF starts with.
var pdfSignature = []byte("%PDF-")

var (
	manyBlankLines = regexp.MustCompile(`\n\s*\n\s*\n+`)
	manySpaces     = regexp.MustCompile(` +`)
)

// Extractor handles PDF uploads.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{"application/pdf"}
}

// Extract pulls plain text out of the uploaded PDF, page by page, up
// to MaxPages. The extracted text is cleaned of common extraction
// artifacts before it is returned.
func (e *Extractor) Extract(_ context.Context, upload *domain.RawUpload) (doc *domain.Document, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: %v", domain.ErrExtractionFailed, r)
		}
	}()

	if upload == nil || len(upload.Content) == 0 {
		return nil, domain.ErrInvalidInput
	}

	if !bytes.HasPrefix(upload.Content, pdfSignature) {
		return nil, fmt.Errorf("%w: missing PDF signature", domain.ErrInvalidInput)
	}

	reader, err := pdf.NewReader(bytes.NewReader(upload.Content), int64(len(upload.Content)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}

	totalPages := reader.NumPage()
	pages := totalPages
	if pages > MaxPages {
		pages = MaxPages
	}

	var builder strings.Builder
	for num := 1; num <= pages; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}

	content := Clean(builder.String())

	doc = &domain.Document{
		UserID:   upload.UserID,
		Filename: upload.Filename,
		Content:  content,
		FileSize: int64(len(upload.Content)),
		Metadata: map[string]any{
			"mime_type":       "application/pdf",
			"pages":           totalPages,
			"pages_extracted": pages,
		},
	}

	return doc, nil
}

// Clean normalises extracted PDF text: form feeds and non-breaking
// spaces are replaced, runs of spaces and blank lines are collapsed,
// and very short lines that are usually extraction artifacts are
// dropped.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\f", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = manySpaces.ReplaceAllString(text, " ")
	text = manyBlankLines.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) >= 3 || line == "" || strings.HasPrefix(line, "---") {
			cleaned = append(cleaned, line)
		}
	}

	text = strings.Join(cleaned, "\n")
	text = manyBlankLines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
