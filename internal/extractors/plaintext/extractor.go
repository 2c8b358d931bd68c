package plaintext

import (
	"context"
	"strings"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text uploads.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// SupportedMIMETypes returns the MIME types this extractor handles.
func (e *Extractor) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/markdown",
	}
}

// Extract converts the uploaded bytes to document content as-is,
// trimming surrounding whitespace.
func (e *Extractor) Extract(_ context.Context, upload *domain.RawUpload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	doc := &domain.Document{
		UserID:   upload.UserID,
		Filename: upload.Filename,
		Content:  strings.TrimSpace(string(upload.Content)),
		FileSize: int64(len(upload.Content)),
		Metadata: map[string]any{
			"mime_type": upload.MIMEType,
		},
	}

	return doc, nil
}
