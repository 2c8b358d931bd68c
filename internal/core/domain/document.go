package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Document represents an uploaded document with its extracted text.
// Content is immutable once extraction succeeds.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// UserID links to the User that uploaded this document.
	UserID string

	// Filename is the original upload filename.
	Filename string

	// Content is the full plain text after extraction.
	// This is the complete document text before chunking.
	Content string

	// Summary is the cached AI-generated summary, empty until the
	// first summarisation completes.
	Summary string

	// FileSize is the uploaded file size in bytes.
	FileSize int64

	// Metadata contains arbitrary key-value pairs (page count, MIME type).
	Metadata map[string]any

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time

	// UpdatedAt is when the document was last updated.
	UpdatedAt time.Time
}

// WordCount returns the number of whitespace-delimited words in Content.
func (d *Document) WordCount() int {
	return len(strings.Fields(d.Content))
}

// CharCount returns the number of runes in Content.
func (d *Document) CharCount() int {
	return utf8.RuneCountInString(d.Content)
}

// ContentPreview returns the first n runes of Content, with an ellipsis
// when truncated.
func (d *Document) ContentPreview(n int) string {
	return preview(d.Content, n)
}

// SummaryPreview returns the first n runes of Summary, with an ellipsis
// when truncated.
func (d *Document) SummaryPreview(n int) string {
	return preview(d.Summary, n)
}

func preview(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Chunk represents a contiguous slice of a document's text.
// Documents are split into chunks so summarisation and Q&A requests
// stay within provider size limits. Chunks are derived, read-only,
// and ordered by Position.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Content is the text content of this chunk.
	Content string

	// Position is the 0-based ordinal position within the document.
	Position int

	// WordCount is the number of words in Content.
	WordCount int

	// StartOffset is the byte offset of Content within the document text.
	StartOffset int

	// EndOffset is the byte offset just past Content within the document text.
	EndOffset int

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]any
}

// ScoredChunk pairs a chunk with its relevance score for a question.
type ScoredChunk struct {
	// Chunk is the selected chunk.
	Chunk Chunk

	// Score is the lexical overlap score against the question.
	Score float64
}

// Selection is an ordered subset of chunks chosen for a question,
// ranked by score descending with ties broken by ascending Position.
// It is non-empty whenever the input chunk sequence is non-empty.
type Selection struct {
	// Question is the question the selection was built for.
	Question string

	// Chunks are the selected chunks in rank order.
	Chunks []ScoredChunk
}

// IsEmpty returns true if no chunks were selected.
func (s Selection) IsEmpty() bool {
	return len(s.Chunks) == 0
}

// Text returns the selected chunk contents joined by blank lines,
// in rank order. maxChars > 0 truncates the result with an ellipsis.
func (s Selection) Text(maxChars int) string {
	var builder strings.Builder
	for i := range s.Chunks {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(s.Chunks[i].Chunk.Content)
	}

	text := builder.String()
	if maxChars > 0 {
		// Truncate on a rune boundary so the prompt stays valid UTF-8.
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars]) + "..."
		}
	}
	return text
}
