package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
	"github.com/intellidoc-labs/intellidoc/internal/logger"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors/chunker"
	"github.com/intellidoc-labs/intellidoc/internal/selector"
)

// Ensure QAService implements the interface.
var _ driving.QAService = (*QAService)(nil)

const (
	// qaMaxChunkWords is the chunking bound for question answering.
	qaMaxChunkWords = 1000

	// qaContextChars caps the combined context sent to the AI service.
	qaContextChars = 4000
)

// qaPromptFormat frames the selected sections and the question for the
// AI service.
const qaPromptFormat = "Based on this document, answer the question briefly and accurately.\n\n" +
	"Document: %s\n\nQuestion: %s\n\nAnswer:"

// QAService answers questions against document content. Relevant
// sections are selected by lexical overlap before anything reaches the
// AI service, keeping requests inside provider size and cost limits.
type QAService struct {
	docStore driven.DocumentStore
	qaStore  driven.QAStore
	llm      driven.LLMService
	selector *selector.Selector
}

// QAOption configures the Q&A service.
type QAOption func(*QAService)

// WithTopK sets how many sections are selected per question.
func WithTopK(k int) QAOption {
	return func(s *QAService) {
		s.selector = selector.New(selector.WithTopK(k))
	}
}

// NewQAService creates a new Q&A service.
// The llm parameter is optional (can be nil); Ask then reports
// domain.ErrLLMUnavailable.
func NewQAService(docStore driven.DocumentStore, qaStore driven.QAStore, llm driven.LLMService, opts ...QAOption) *QAService {
	s := &QAService{
		docStore: docStore,
		qaStore:  qaStore,
		llm:      llm,
		selector: selector.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask selects the document sections relevant to the question, queries
// the AI service, and records the interaction.
func (s *QAService) Ask(ctx context.Context, documentID, question string) (*domain.QAInteraction, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if strings.TrimSpace(doc.Content) == "" {
		return nil, fmt.Errorf("%w: no content to search", domain.ErrNoContent)
	}

	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	chunks, err := s.documentChunks(ctx, doc)
	if err != nil {
		return nil, err
	}

	selection, err := s.selector.Select(question, chunks)
	if err != nil {
		return nil, err
	}
	if selection.IsEmpty() {
		return nil, fmt.Errorf("%w: no content to search", domain.ErrNoContent)
	}

	logger.Debug("Selected %d of %d chunks", len(selection.Chunks), len(chunks))

	prompt := fmt.Sprintf(qaPromptFormat, selection.Text(qaContextChars), question)
	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{Temperature: 0.1})
	if err != nil {
		return nil, fmt.Errorf("answer question: %w", err)
	}

	qa := &domain.QAInteraction{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		Question:   question,
		Answer:     strings.TrimSpace(answer),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.qaStore.SaveInteraction(ctx, qa); err != nil {
		return nil, fmt.Errorf("save interaction: %w", err)
	}

	logger.Info("Answered question for document %s", documentID)

	return qa, nil
}

// History returns all recorded interactions for a document, oldest first.
func (s *QAService) History(ctx context.Context, documentID string) ([]domain.QAInteraction, error) {
	// Verify document exists
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return nil, err
	}
	return s.qaStore.ListInteractions(ctx, documentID)
}

// documentChunks returns the cached chunks for the document, falling
// back to fresh chunking at the Q&A bound when the cache is empty.
func (s *QAService) documentChunks(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error) {
	chunks, err := s.docStore.GetChunks(ctx, doc.ID)
	if err == nil && len(chunks) > 0 {
		logger.Debug("Chunk cache hit: %d chunks", len(chunks))
		return chunks, nil
	}

	chunks, err = chunker.Split(doc.Content, qaMaxChunkWords/2, qaMaxChunkWords)
	if err != nil {
		return nil, fmt.Errorf("chunk content: %w", err)
	}
	for i := range chunks {
		chunks[i].DocumentID = doc.ID
	}
	return chunks, nil
}
