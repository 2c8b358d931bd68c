package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/storage/memory"
	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/extractors"
	"github.com/intellidoc-labs/intellidoc/internal/extractors/plaintext"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors/chunker"
)

func newDocumentService() (*DocumentService, *memory.DocumentStore, *memory.QAStore) {
	docStore := memory.NewDocumentStore()
	qaStore := memory.NewQAStore()

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())

	pipeline := postprocessors.NewPipeline(chunker.New(
		chunker.WithMinWords(2),
		chunker.WithMaxWords(5),
	))

	return NewDocumentService(docStore, qaStore, registry, pipeline), docStore, qaStore
}

func TestDocumentService_Upload_Success(t *testing.T) {
	svc, docStore, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_a",
		Filename: "notes.txt",
		MIMEType: "text/plain",
		Content:  []byte("alpha bravo charlie delta echo foxtrot golf hotel"),
	})
	require.NoError(t, err)
	require.NotNil(t, doc)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "user_a", doc.UserID)
	assert.Equal(t, "notes.txt", doc.Filename)
	assert.False(t, doc.CreatedAt.IsZero())

	saved, err := docStore.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Content, saved.Content)

	chunks, err := docStore.GetChunks(ctx, doc.ID)
	require.NoError(t, err)
	require.NotEmpty(t, chunks)
	for i, chunk := range chunks {
		assert.Equal(t, doc.ID, chunk.DocumentID)
		assert.Equal(t, i, chunk.Position)
	}
}

func TestDocumentService_Upload_MissingFilename(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.Upload(context.Background(), &domain.RawUpload{
		UserID:   "user_a",
		MIMEType: "text/plain",
		Content:  []byte("content"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Upload_NilUpload(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDocumentService_Upload_UnsupportedType(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.Upload(context.Background(), &domain.RawUpload{
		UserID:   "user_a",
		Filename: "slides.pptx",
		MIMEType: "application/vnd.ms-powerpoint",
		Content:  []byte{0x50, 0x4b},
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDocumentService_Upload_EmptyContent(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.Upload(context.Background(), &domain.RawUpload{
		UserID:   "user_a",
		Filename: "blank.txt",
		MIMEType: "text/plain",
		Content:  []byte("   \n\t  "),
	})
	assert.ErrorIs(t, err, domain.ErrNoContent)
}

func TestDocumentService_List(t *testing.T) {
	svc, _, _ := newDocumentService()
	ctx := context.Background()

	_, err := svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_a",
		Filename: "first.txt",
		MIMEType: "text/plain",
		Content:  []byte("first document content"),
	})
	require.NoError(t, err)

	_, err = svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_b",
		Filename: "second.txt",
		MIMEType: "text/plain",
		Content:  []byte("second document content"),
	})
	require.NoError(t, err)

	docs, err := svc.List(ctx, "user_a")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "first.txt", docs[0].Filename)
}

func TestDocumentService_Get_NotFound(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_GetContent(t *testing.T) {
	svc, _, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_a",
		Filename: "notes.txt",
		MIMEType: "text/plain",
		Content:  []byte("alpha bravo charlie delta echo"),
	})
	require.NoError(t, err)

	content, err := svc.GetContent(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "alpha bravo charlie delta echo", content)
}

func TestDocumentService_GetContent_NotFound(t *testing.T) {
	svc, _, _ := newDocumentService()

	_, err := svc.GetContent(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentService_GetDetails(t *testing.T) {
	svc, _, _ := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_a",
		Filename: "notes.txt",
		MIMEType: "text/plain",
		Content:  []byte("one two three four five six seven"),
	})
	require.NoError(t, err)

	details, err := svc.GetDetails(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, details.ID)
	assert.Equal(t, "notes.txt", details.Filename)
	assert.Equal(t, 7, details.WordCount)
	assert.Greater(t, details.ChunkCount, 0)
	assert.False(t, details.HasSummary)
}

func TestDocumentService_Delete(t *testing.T) {
	svc, docStore, qaStore := newDocumentService()
	ctx := context.Background()

	doc, err := svc.Upload(ctx, &domain.RawUpload{
		UserID:   "user_a",
		Filename: "notes.txt",
		MIMEType: "text/plain",
		Content:  []byte("some words to keep"),
	})
	require.NoError(t, err)

	require.NoError(t, qaStore.SaveInteraction(ctx, &domain.QAInteraction{
		ID:         "qa-1",
		DocumentID: doc.ID,
		Question:   "q",
		Answer:     "a",
	}))

	require.NoError(t, svc.Delete(ctx, doc.ID))

	_, err = docStore.GetDocument(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	qas, err := qaStore.ListInteractions(ctx, doc.ID)
	require.NoError(t, err)
	assert.Empty(t, qas)
}

func TestDocumentService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newDocumentService()

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
