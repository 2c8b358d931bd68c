package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

// createTestUser creates a test user to satisfy foreign key constraints.
func createTestUser(t *testing.T, store *Store, userID string) {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	err := store.UserStore().SaveUser(context.Background(), &domain.User{
		ID:        userID,
		CreatedAt: now,
		LastSeen:  now,
	})
	require.NoError(t, err)
}

// createTestDocument creates a test document to satisfy foreign key constraints.
func createTestDocument(t *testing.T, store *Store, docID, userID string) {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Second)
	err := store.DocumentStore().SaveDocument(context.Background(), &domain.Document{
		ID:        docID,
		UserID:    userID,
		Filename:  "test-" + docID + ".txt",
		Content:   "test content for " + docID,
		Metadata:  map[string]any{},
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Invalid path should fail to create the data directory
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "intellidoc.db")
	assert.Equal(t, dbPath, store.Path())
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestNewStore_MigrationsIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database reruns migrate without error
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

// ==================== Document Store Tests ====================

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")

	now := time.Now().UTC().Truncate(time.Second)
	doc := &domain.Document{
		ID:        "doc-1",
		UserID:    "user_a",
		Filename:  "report.pdf",
		Content:   "quarterly revenue grew fourteen percent",
		Summary:   "Revenue grew.",
		FileSize:  2048,
		Metadata:  map[string]any{"pages": float64(3)},
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, store.DocumentStore().SaveDocument(ctx, doc))

	saved, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", saved.ID)
	assert.Equal(t, "user_a", saved.UserID)
	assert.Equal(t, "report.pdf", saved.Filename)
	assert.Equal(t, "quarterly revenue grew fourteen percent", saved.Content)
	assert.Equal(t, "Revenue grew.", saved.Summary)
	assert.Equal(t, int64(2048), saved.FileSize)
	assert.Equal(t, float64(3), saved.Metadata["pages"])
	assert.Equal(t, now, saved.CreatedAt.UTC())
}

func TestDocumentStore_SaveDocument_Upsert(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	updated := &domain.Document{
		ID:        "doc-1",
		UserID:    "user_a",
		Filename:  "test-doc-1.txt",
		Content:   "test content for doc-1",
		Summary:   "now with a summary",
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.DocumentStore().SaveDocument(ctx, updated))

	saved, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "now with a summary", saved.Summary)
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.DocumentStore().GetDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListDocuments_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestUser(t, store, "user_b")

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"d1", "d2"} {
		require.NoError(t, store.DocumentStore().SaveDocument(ctx, &domain.Document{
			ID:        id,
			UserID:    "user_a",
			Filename:  id + ".txt",
			Content:   "content",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base,
		}))
	}
	require.NoError(t, store.DocumentStore().SaveDocument(ctx, &domain.Document{
		ID: "d3", UserID: "user_b", Filename: "d3.txt", Content: "content",
		CreatedAt: base, UpdatedAt: base,
	}))

	docs, err := store.DocumentStore().ListDocuments(ctx, "user_a")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d2", docs[0].ID)
	assert.Equal(t, "d1", docs[1].ID)
}

func TestDocumentStore_DeleteDocument_Cascades(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	require.NoError(t, store.DocumentStore().SaveChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "c1", DocumentID: "doc-1", Content: "chunk", Position: 0},
	}))
	require.NoError(t, store.QAStore().SaveInteraction(ctx, &domain.QAInteraction{
		ID: "qa-1", DocumentID: "doc-1", Question: "q", Answer: "a",
		CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, store.DocumentStore().DeleteDocument(ctx, "doc-1"))

	_, err := store.DocumentStore().GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	chunks, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, chunks)

	qas, err := store.QAStore().ListInteractions(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, qas)
}

func TestDocumentStore_DeleteDocument_NotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.DocumentStore().DeleteDocument(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_SaveChunks_ReplacesExisting(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	first := []domain.Chunk{
		{ID: "c1", DocumentID: "doc-1", Content: "first half", Position: 0, WordCount: 2},
		{ID: "c2", DocumentID: "doc-1", Content: "second half", Position: 1, WordCount: 2},
	}
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, "doc-1", first))

	second := []domain.Chunk{
		{ID: "c3", DocumentID: "doc-1", Content: "whole thing", Position: 0, WordCount: 2, StartOffset: 0, EndOffset: 11},
	}
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, "doc-1", second))

	chunks, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "c3", chunks[0].ID)
	assert.Equal(t, "whole thing", chunks[0].Content)
	assert.Equal(t, 2, chunks[0].WordCount)
	assert.Equal(t, 11, chunks[0].EndOffset)
}

func TestDocumentStore_GetChunks_PositionOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	chunks := []domain.Chunk{
		{ID: "c2", DocumentID: "doc-1", Content: "middle", Position: 1},
		{ID: "c3", DocumentID: "doc-1", Content: "end", Position: 2},
		{ID: "c1", DocumentID: "doc-1", Content: "start", Position: 0},
	}
	require.NoError(t, store.DocumentStore().SaveChunks(ctx, "doc-1", chunks))

	got, err := store.DocumentStore().GetChunks(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "start", got[0].Content)
	assert.Equal(t, "middle", got[1].Content)
	assert.Equal(t, "end", got[2].Content)
}

// ==================== User Store Tests ====================

func TestUserStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	user := &domain.User{ID: "user_ab12cd34", CreatedAt: now, LastSeen: now}
	require.NoError(t, store.UserStore().SaveUser(ctx, user))

	saved, err := store.UserStore().GetUser(ctx, "user_ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "user_ab12cd34", saved.ID)
	assert.Equal(t, now, saved.CreatedAt.UTC())
}

func TestUserStore_SaveUser_PreservesCreatedAt(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	require.NoError(t, store.UserStore().SaveUser(ctx, &domain.User{
		ID: "user_a", CreatedAt: created, LastSeen: created,
	}))

	// A later save only moves last_seen
	later := created.Add(30 * time.Minute)
	require.NoError(t, store.UserStore().SaveUser(ctx, &domain.User{
		ID: "user_a", CreatedAt: later, LastSeen: later,
	}))

	saved, err := store.UserStore().GetUser(ctx, "user_a")
	require.NoError(t, err)
	assert.Equal(t, created, saved.CreatedAt.UTC())
	assert.Equal(t, later, saved.LastSeen.UTC())
}

func TestUserStore_GetUser_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.UserStore().GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStore_TouchUser(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, store.UserStore().SaveUser(ctx, &domain.User{
		ID: "user_a", CreatedAt: past, LastSeen: past,
	}))

	require.NoError(t, store.UserStore().TouchUser(ctx, "user_a"))

	saved, err := store.UserStore().GetUser(ctx, "user_a")
	require.NoError(t, err)
	assert.True(t, saved.LastSeen.After(past))
}

func TestUserStore_TouchUser_NotFound(t *testing.T) {
	store := setupTestStore(t)

	err := store.UserStore().TouchUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ==================== QA Store Tests ====================

func TestQAStore_SaveAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.QAStore().SaveInteraction(ctx, &domain.QAInteraction{
		ID: "qa-2", DocumentID: "doc-1",
		Question: "Who wrote it?", Answer: "The finance team.",
		CreatedAt: base.Add(time.Second),
	}))
	require.NoError(t, store.QAStore().SaveInteraction(ctx, &domain.QAInteraction{
		ID: "qa-1", DocumentID: "doc-1",
		Question: "What is the refund policy?", Answer: "Thirty days.",
		CreatedAt: base,
	}))

	got, err := store.QAStore().ListInteractions(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "qa-1", got[0].ID)
	assert.Equal(t, "What is the refund policy?", got[0].Question)
	assert.Equal(t, "qa-2", got[1].ID)
}

func TestQAStore_ListInteractions_Empty(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	got, err := store.QAStore().ListInteractions(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQAStore_DeleteInteractions(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	createTestUser(t, store, "user_a")
	createTestDocument(t, store, "doc-1", "user_a")

	require.NoError(t, store.QAStore().SaveInteraction(ctx, &domain.QAInteraction{
		ID: "qa-1", DocumentID: "doc-1", Question: "q", Answer: "a",
		CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, store.QAStore().DeleteInteractions(ctx, "doc-1"))

	got, err := store.QAStore().ListInteractions(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
