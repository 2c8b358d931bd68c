package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellidoc-labs/intellidoc/internal/adapters/driven/storage/memory"
	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

func newQAService(llm *mockLLM) (*QAService, *memory.DocumentStore, *memory.QAStore) {
	docStore := memory.NewDocumentStore()
	qaStore := memory.NewQAStore()
	if llm == nil {
		return NewQAService(docStore, qaStore, nil), docStore, qaStore
	}
	return NewQAService(docStore, qaStore, llm), docStore, qaStore
}

func TestQAService_Ask_Success(t *testing.T) {
	llm := &mockLLM{generateResponse: "Refunds are issued within 30 days.  "}
	svc, docStore, qaStore := newQAService(llm)
	ctx := context.Background()

	seedDocument(t, docStore, "Our refund policy allows returns within 30 days of purchase.")

	qa, err := svc.Ask(ctx, "doc-1", "What is the refund policy?")
	require.NoError(t, err)
	require.NotNil(t, qa)

	assert.NotEmpty(t, qa.ID)
	assert.Equal(t, "doc-1", qa.DocumentID)
	assert.Equal(t, "What is the refund policy?", qa.Question)
	assert.Equal(t, "Refunds are issued within 30 days.", qa.Answer)
	assert.False(t, qa.CreatedAt.IsZero())

	// The prompt frames the selected sections and the question.
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "refund policy allows returns")
	assert.Contains(t, llm.prompts[0], "Question: What is the refund policy?")
	assert.InDelta(t, 0.1, llm.generateOpts[0].Temperature, 0.001)

	// The interaction is recorded.
	history, err := qaStore.ListInteractions(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, qa.ID, history[0].ID)
}

func TestQAService_Ask_UsesCachedChunks(t *testing.T) {
	llm := &mockLLM{generateResponse: "The second section."}
	svc, docStore, _ := newQAService(llm)
	ctx := context.Background()

	seedDocument(t, docStore, "full document text about many topics")
	require.NoError(t, docStore.SaveChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "c0", DocumentID: "doc-1", Position: 0, Content: "nothing of interest here"},
		{ID: "c1", DocumentID: "doc-1", Position: 1, Content: "the warranty covers two years"},
	}))

	_, err := svc.Ask(ctx, "doc-1", "How long is the warranty?")
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "warranty covers two years")
}

func TestQAService_WithTopK(t *testing.T) {
	llm := &mockLLM{generateResponse: "Two years."}
	docStore := memory.NewDocumentStore()
	qaStore := memory.NewQAStore()
	svc := NewQAService(docStore, qaStore, llm, WithTopK(1))
	ctx := context.Background()

	seedDocument(t, docStore, "full document text about many topics")
	require.NoError(t, docStore.SaveChunks(ctx, "doc-1", []domain.Chunk{
		{ID: "c0", DocumentID: "doc-1", Position: 0, Content: "nothing of interest here"},
		{ID: "c1", DocumentID: "doc-1", Position: 1, Content: "the warranty covers two years"},
	}))

	_, err := svc.Ask(ctx, "doc-1", "How long is the warranty?")
	require.NoError(t, err)

	// Only the single best-scoring section reaches the prompt.
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "warranty covers two years")
	assert.NotContains(t, llm.prompts[0], "nothing of interest here")
}

func TestQAService_Ask_EmptyQuestion(t *testing.T) {
	svc, docStore, _ := newQAService(&mockLLM{})
	seedDocument(t, docStore, "some content")

	_, err := svc.Ask(context.Background(), "doc-1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQAService_Ask_DocumentNotFound(t *testing.T) {
	svc, _, _ := newQAService(&mockLLM{})

	_, err := svc.Ask(context.Background(), "missing", "anything?")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQAService_Ask_NoLLM(t *testing.T) {
	svc, docStore, _ := newQAService(nil)
	seedDocument(t, docStore, "some content")

	_, err := svc.Ask(context.Background(), "doc-1", "anything?")
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

func TestQAService_Ask_EmptyDocument(t *testing.T) {
	svc, docStore, _ := newQAService(&mockLLM{})
	seedDocument(t, docStore, "  \n ")

	_, err := svc.Ask(context.Background(), "doc-1", "anything?")
	assert.ErrorIs(t, err, domain.ErrNoContent)
}

func TestQAService_Ask_LLMError(t *testing.T) {
	llmErr := errors.New("provider unreachable")
	svc, docStore, qaStore := newQAService(&mockLLM{generateErr: llmErr})
	ctx := context.Background()

	seedDocument(t, docStore, "some content about widgets")

	_, err := svc.Ask(ctx, "doc-1", "What about widgets?")
	assert.ErrorIs(t, err, llmErr)

	// Failed calls are not recorded.
	history, listErr := qaStore.ListInteractions(ctx, "doc-1")
	require.NoError(t, listErr)
	assert.Empty(t, history)
}

func TestQAService_Ask_ContextClamped(t *testing.T) {
	llm := &mockLLM{generateResponse: "answer"}
	svc, docStore, _ := newQAService(llm)
	ctx := context.Background()

	// Long repeated content so selected sections exceed the context cap.
	content := strings.TrimSpace(strings.Repeat("widget assembly instructions step ", 2000))
	seedDocument(t, docStore, content)

	_, err := svc.Ask(ctx, "doc-1", "How are widgets assembled?")
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1)
	assert.LessOrEqual(t, len(llm.prompts[0]), qaContextChars+len(qaPromptFormat)+100)
}

func TestQAService_History(t *testing.T) {
	svc, docStore, qaStore := newQAService(&mockLLM{})
	ctx := context.Background()

	seedDocument(t, docStore, "some content")
	require.NoError(t, qaStore.SaveInteraction(ctx, &domain.QAInteraction{
		ID: "qa-1", DocumentID: "doc-1", Question: "q", Answer: "a",
	}))

	history, err := svc.History(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "qa-1", history[0].ID)
}

func TestQAService_History_DocumentNotFound(t *testing.T) {
	svc, _, _ := newQAService(&mockLLM{})

	_, err := svc.History(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
