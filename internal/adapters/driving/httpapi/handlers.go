package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// documentResponse is the JSON shape for a document.
type documentResponse struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	WordCount  int       `json:"word_count"`
	FileSize   int64     `json:"file_size"`
	HasSummary bool      `json:"has_summary"`
	Preview    string    `json:"preview"`
	CreatedAt  time.Time `json:"created_at"`
}

// summariseRequest is the JSON body for summary generation.
type summariseRequest struct {
	Length  string `json:"length"`
	Refresh bool   `json:"refresh"`
}

// askRequest is the JSON body for a question.
type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// qaResponse is the JSON shape for a question/answer pair.
type qaResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

func toDocumentResponse(doc *domain.Document) documentResponse {
	return documentResponse{
		ID:         doc.ID,
		Filename:   doc.Filename,
		WordCount:  doc.WordCount(),
		FileSize:   doc.FileSize,
		HasSummary: doc.Summary != "",
		Preview:    doc.ContentPreview(200),
		CreatedAt:  doc.CreatedAt,
	}
}

func toQAResponse(qa *domain.QAInteraction) qaResponse {
	return qaResponse{
		ID:        qa.ID,
		Question:  qa.Question,
		Answer:    qa.Answer,
		CreatedAt: qa.CreatedAt,
	}
}

// ownedDocument loads a document and verifies it belongs to the
// session user. Foreign documents are reported as not found.
func (s *Server) ownedDocument(c *gin.Context) (*domain.Document, error) {
	doc, err := s.documents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	if doc.UserID != sessionUser(c) {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// handleUpload accepts a multipart file and stores it as a document.
func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		writeError(c, fmt.Errorf("%w: missing file field", domain.ErrInvalidInput))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		writeError(c, fmt.Errorf("read upload: %w", err))
		return
	}
	if len(content) > maxUploadBytes {
		writeError(c, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrInvalidInput, maxUploadBytes))
		return
	}

	doc, err := s.documents.Upload(c.Request.Context(), &domain.RawUpload{
		UserID:   sessionUser(c),
		Filename: fileHeader.Filename,
		MIMEType: fileHeader.Header.Get("Content-Type"),
		Content:  content,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

// handleList returns the session user's documents, newest first.
func (s *Server) handleList(c *gin.Context) {
	docs, err := s.documents.List(c.Request.Context(), sessionUser(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]documentResponse, len(docs))
	for i := range docs {
		out[i] = toDocumentResponse(&docs[i])
	}
	c.JSON(http.StatusOK, gin.H{"documents": out})
}

// handleGet returns document details including the cached summary.
func (s *Server) handleGet(c *gin.Context) {
	doc, err := s.ownedDocument(c)
	if err != nil {
		writeError(c, err)
		return
	}

	details, err := s.documents.GetDetails(c.Request.Context(), doc.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          details.ID,
		"filename":    details.Filename,
		"file_size":   details.FileSize,
		"word_count":  details.WordCount,
		"chunk_count": details.ChunkCount,
		"has_summary": details.HasSummary,
		"summary":     doc.Summary,
		"created_at":  details.CreatedAt,
		"metadata":    details.Metadata,
	})
}

// handleDelete removes a document, its chunks, and its history.
func (s *Server) handleDelete(c *gin.Context) {
	doc, err := s.ownedDocument(c)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.documents.Delete(c.Request.Context(), doc.ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleSummarise generates (or returns the cached) summary.
func (s *Server) handleSummarise(c *gin.Context) {
	doc, err := s.ownedDocument(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req summariseRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		writeError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err))
		return
	}
	if req.Length == "" {
		req.Length = domain.SummaryMedium.String()
	}

	summary, err := s.summaries.Summarise(
		c.Request.Context(), doc.ID, domain.SummaryLength(req.Length), req.Refresh)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": doc.ID,
		"length":      req.Length,
		"summary":     summary,
	})
}

// handleAsk answers a question about a document.
func (s *Server) handleAsk(c *gin.Context) {
	doc, err := s.ownedDocument(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, fmt.Errorf("%w: question is required", domain.ErrInvalidInput))
		return
	}

	qa, err := s.questions.Ask(c.Request.Context(), doc.ID, req.Question)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toQAResponse(qa))
}

// handleHistory returns a document's question history, oldest first.
func (s *Server) handleHistory(c *gin.Context) {
	doc, err := s.ownedDocument(c)
	if err != nil {
		writeError(c, err)
		return
	}

	history, err := s.questions.History(c.Request.Context(), doc.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]qaResponse, len(history))
	for i := range history {
		out[i] = toQAResponse(&history[i])
	}
	c.JSON(http.StatusOK, gin.H{"questions": out})
}
