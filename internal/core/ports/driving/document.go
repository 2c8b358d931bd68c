package driving

import (
	"context"
	"time"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// DocumentService manages uploaded documents.
type DocumentService interface {
	// Upload extracts text from a raw upload and persists the document.
	Upload(ctx context.Context, upload *domain.RawUpload) (*domain.Document, error)

	// List returns all documents for a user, newest first.
	List(ctx context.Context, userID string) ([]domain.Document, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, documentID string) (*domain.Document, error)

	// GetDetails returns display metadata for a document.
	GetDetails(ctx context.Context, documentID string) (*DocumentDetails, error)

	// GetContent returns the full extracted text of a document.
	GetContent(ctx context.Context, documentID string) (string, error)

	// Delete removes a document, its chunks, and its Q&A history.
	Delete(ctx context.Context, documentID string) error
}

// DocumentDetails provides a standardised view of document metadata.
type DocumentDetails struct {
	// ID is the unique document identifier.
	ID string

	// UserID is the owning session user.
	UserID string

	// Filename is the original upload filename.
	Filename string

	// FileSize is the uploaded file size in bytes.
	FileSize int64

	// WordCount is the number of words in the extracted text.
	WordCount int

	// ChunkCount is the number of cached chunks.
	ChunkCount int

	// HasSummary is true once a summary has been generated.
	HasSummary bool

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// Metadata contains flattened key-value pairs for display.
	Metadata map[string]string
}
