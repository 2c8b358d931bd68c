package driven

import (
	"context"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// Extractor transforms raw uploads into documents with plain text content.
// Each extractor handles specific MIME types (e.g., PDF, plain text).
type Extractor interface {
	// SupportedMIMETypes returns the MIME types this extractor handles.
	SupportedMIMETypes() []string

	// Extract transforms a raw upload into a document.
	// The returned document has Content populated but no ID; the
	// caller assigns identity and persists it.
	Extract(ctx context.Context, upload *domain.RawUpload) (*domain.Document, error)
}

// ExtractorRegistry selects the extractor for an upload's MIME type.
type ExtractorRegistry interface {
	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// ForMIMEType returns the extractor handling the given MIME type.
	// Returns domain.ErrUnsupportedType when none matches.
	ForMIMEType(mimeType string) (Extractor, error)
}
