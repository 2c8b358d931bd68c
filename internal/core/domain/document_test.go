package domain

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// TestDocument_Fields tests Document structure fields
func TestDocument_Fields(t *testing.T) {
	now := time.Now()

	doc := Document{
		ID:        "doc-123",
		UserID:    "user-456",
		Filename:  "report.pdf",
		Content:   "Extracted text.",
		Summary:   "A summary.",
		FileSize:  2048,
		Metadata:  map[string]any{"pages": 42, "mime_type": "application/pdf"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	assert.Equal(t, "doc-123", doc.ID)
	assert.Equal(t, "user-456", doc.UserID)
	assert.Equal(t, "report.pdf", doc.Filename)
	assert.Equal(t, "Extracted text.", doc.Content)
	assert.Equal(t, "A summary.", doc.Summary)
	assert.Equal(t, int64(2048), doc.FileSize)
	assert.Equal(t, 42, doc.Metadata["pages"])
	assert.Equal(t, now, doc.CreatedAt)
}

func TestDocument_WordCount(t *testing.T) {
	doc := Document{Content: "one two   three\nfour"}
	assert.Equal(t, 4, doc.WordCount())

	empty := Document{}
	assert.Equal(t, 0, empty.WordCount())
}

func TestDocument_ContentPreview(t *testing.T) {
	doc := Document{Content: "abcdefghij"}

	assert.Equal(t, "abcde...", doc.ContentPreview(5))
	assert.Equal(t, "abcdefghij", doc.ContentPreview(10))
	assert.Equal(t, "abcdefghij", doc.ContentPreview(100))
	assert.Equal(t, "", doc.ContentPreview(0))
}

func TestDocument_SummaryPreview(t *testing.T) {
	doc := Document{Summary: "short summary"}
	assert.Equal(t, "short...", doc.SummaryPreview(5))

	noSummary := Document{}
	assert.Equal(t, "", noSummary.SummaryPreview(50))
}

func TestSelection_IsEmpty(t *testing.T) {
	assert.True(t, Selection{}.IsEmpty())

	sel := Selection{Chunks: []ScoredChunk{{Chunk: Chunk{ID: "c1"}}}}
	assert.False(t, sel.IsEmpty())
}

func TestSelection_Text(t *testing.T) {
	sel := Selection{
		Chunks: []ScoredChunk{
			{Chunk: Chunk{Content: "first section"}},
			{Chunk: Chunk{Content: "second section"}},
		},
	}

	assert.Equal(t, "first section\n\nsecond section", sel.Text(0))
	assert.Equal(t, "first...", sel.Text(5))
}

func TestSelection_Text_MultiByteRunes(t *testing.T) {
	sel := Selection{
		Chunks: []ScoredChunk{
			{Chunk: Chunk{Content: "héllo wörld résumé"}},
		},
	}

	got := sel.Text(7)
	assert.Equal(t, "héllo w...", got)
	assert.True(t, utf8.ValidString(got))
}
