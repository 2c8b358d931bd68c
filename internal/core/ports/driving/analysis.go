package driving

import (
	"context"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// SummaryService generates and caches document summaries.
type SummaryService interface {
	// Summarise generates a summary of the document at the given length
	// and caches it on the document record. A cached summary is
	// returned without a new AI call unless refresh is true.
	Summarise(ctx context.Context, documentID string, length domain.SummaryLength, refresh bool) (string, error)
}

// QAService answers questions against document content.
type QAService interface {
	// Ask selects the document sections relevant to the question,
	// queries the AI service, and records the interaction.
	Ask(ctx context.Context, documentID, question string) (*domain.QAInteraction, error)

	// History returns all recorded interactions for a document, oldest first.
	History(ctx context.Context, documentID string) ([]domain.QAInteraction, error)
}

// SessionService manages temporary session users.
type SessionService interface {
	// Begin creates a new temporary user and returns it.
	Begin(ctx context.Context) (*domain.User, error)

	// Get retrieves a user by ID.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// Touch updates a user's LastSeen timestamp, creating the user if
	// it does not exist.
	Touch(ctx context.Context, userID string) (*domain.User, error)
}
