package extractors

import (
	"fmt"
	"strings"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps MIME types to extractors.
type Registry struct {
	byMIME map[string]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byMIME: make(map[string]driven.Extractor),
	}
}

// Register adds an extractor for all MIME types it supports.
// Later registrations win on conflict.
func (r *Registry) Register(extractor driven.Extractor) {
	for _, mime := range extractor.SupportedMIMETypes() {
		r.byMIME[normaliseMIME(mime)] = extractor
	}
}

// ForMIMEType returns the extractor handling the given MIME type.
func (r *Registry) ForMIMEType(mimeType string) (driven.Extractor, error) {
	extractor, ok := r.byMIME[normaliseMIME(mimeType)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
	return extractor, nil
}

// normaliseMIME lowercases a MIME type and drops parameters such as
// "; charset=utf-8".
func normaliseMIME(mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}
