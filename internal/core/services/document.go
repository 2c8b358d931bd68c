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
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages uploaded documents.
type DocumentService struct {
	docStore driven.DocumentStore
	qaStore  driven.QAStore
	registry driven.ExtractorRegistry
	pipeline driven.PostProcessorPipeline
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	docStore driven.DocumentStore,
	qaStore driven.QAStore,
	registry driven.ExtractorRegistry,
	pipeline driven.PostProcessorPipeline,
) *DocumentService {
	return &DocumentService{
		docStore: docStore,
		qaStore:  qaStore,
		registry: registry,
		pipeline: pipeline,
	}
}

// Upload extracts text from a raw upload and persists the document.
// The document is chunked through the post-processing pipeline and the
// chunks are cached for reuse by later questions.
func (s *DocumentService) Upload(ctx context.Context, upload *domain.RawUpload) (*domain.Document, error) {
	if upload == nil || upload.Filename == "" {
		return nil, fmt.Errorf("%w: missing upload", domain.ErrInvalidInput)
	}

	logger.Section("Document Upload")
	logger.Debug("Upload: file=%q mime=%q size=%d", upload.Filename, upload.MIMEType, len(upload.Content))

	extractor, err := s.registry.ForMIMEType(upload.MIMEType)
	if err != nil {
		return nil, err
	}

	doc, err := extractor.Extract(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("extract %q: %w", upload.Filename, err)
	}

	if strings.TrimSpace(doc.Content) == "" {
		return nil, fmt.Errorf("%w: no text could be extracted from %q", domain.ErrNoContent, upload.Filename)
	}

	now := time.Now().UTC()
	doc.ID = uuid.New().String()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("chunk document: %w", err)
	}
	if err := s.docStore.SaveChunks(ctx, doc.ID, chunks); err != nil {
		return nil, fmt.Errorf("cache chunks: %w", err)
	}

	logger.Info("Uploaded %q: %d words, %d chunks", doc.Filename, doc.WordCount(), len(chunks))

	return doc, nil
}

// List returns all documents for a user, newest first.
func (s *DocumentService) List(ctx context.Context, userID string) ([]domain.Document, error) {
	if s.docStore == nil {
		return nil, domain.ErrNotFound
	}
	return s.docStore.ListDocuments(ctx, userID)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.docStore.GetDocument(ctx, documentID)
}

// GetContent returns the full extracted text of a document.
func (s *DocumentService) GetContent(ctx context.Context, documentID string) (string, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

// GetDetails returns display metadata for a document.
func (s *DocumentService) GetDetails(ctx context.Context, documentID string) (*driving.DocumentDetails, error) {
	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	chunks, err := s.docStore.GetChunks(ctx, documentID)
	chunkCount := 0
	if err == nil {
		chunkCount = len(chunks)
	}

	// Flatten metadata to string map
	metadata := make(map[string]string)
	for key, value := range doc.Metadata {
		metadata[key] = fmt.Sprintf("%v", value)
	}

	return &driving.DocumentDetails{
		ID:         doc.ID,
		UserID:     doc.UserID,
		Filename:   doc.Filename,
		FileSize:   doc.FileSize,
		WordCount:  doc.WordCount(),
		ChunkCount: chunkCount,
		HasSummary: doc.Summary != "",
		CreatedAt:  doc.CreatedAt,
		Metadata:   metadata,
	}, nil
}

// Delete removes a document, its cached chunks, and its Q&A history.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if _, err := s.docStore.GetDocument(ctx, documentID); err != nil {
		return err
	}

	if s.qaStore != nil {
		if err := s.qaStore.DeleteInteractions(ctx, documentID); err != nil {
			return fmt.Errorf("delete interactions: %w", err)
		}
	}

	return s.docStore.DeleteDocument(ctx, documentID)
}
