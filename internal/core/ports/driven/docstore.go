package driven

import (
	"context"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// DocumentStore persists documents and their cached chunks.
// Backed by SQLite for metadata storage.
type DocumentStore interface {
	// SaveDocument stores or updates a document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns documents for a user, newest first.
	ListDocuments(ctx context.Context, userID string) ([]domain.Document, error)

	// DeleteDocument removes a document, its chunks, and its Q&A history.
	DeleteDocument(ctx context.Context, id string) error

	// SaveChunks replaces the cached chunks for a document.
	SaveChunks(ctx context.Context, documentID string, chunks []domain.Chunk) error

	// GetChunks retrieves the cached chunks for a document in position order.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)
}

// UserStore persists temporary session users.
type UserStore interface {
	// SaveUser stores or updates a user.
	SaveUser(ctx context.Context, user *domain.User) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// TouchUser updates a user's LastSeen timestamp.
	TouchUser(ctx context.Context, id string) error
}

// QAStore persists question/answer interactions.
type QAStore interface {
	// SaveInteraction stores a question/answer pair.
	SaveInteraction(ctx context.Context, qa *domain.QAInteraction) error

	// ListInteractions returns all interactions for a document, oldest first.
	ListInteractions(ctx context.Context, documentID string) ([]domain.QAInteraction, error)

	// DeleteInteractions removes all interactions for a document.
	DeleteInteractions(ctx context.Context, documentID string) error
}
