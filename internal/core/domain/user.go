package domain

import "time"

// User is a temporary session-scoped identity. Users are created on
// first contact (no password, no profile) and exist only to partition
// documents and Q&A history between sessions.
type User struct {
	// ID is the unique identifier, generated at session start.
	ID string

	// CreatedAt is when the user first appeared.
	CreatedAt time.Time

	// LastSeen is when the user last made a request.
	LastSeen time.Time
}

// QAInteraction is a stored question/answer pair for a document.
type QAInteraction struct {
	// ID is the unique identifier for the interaction.
	ID string

	// DocumentID links to the Document the question was asked against.
	DocumentID string

	// Question is the user's question text.
	Question string

	// Answer is the AI-generated answer text.
	Answer string

	// CreatedAt is when the interaction was recorded.
	CreatedAt time.Time
}
