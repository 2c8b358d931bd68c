package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driven"
	"github.com/intellidoc-labs/intellidoc/internal/core/ports/driving"
	"github.com/intellidoc-labs/intellidoc/internal/logger"
	"github.com/intellidoc-labs/intellidoc/internal/postprocessors/chunker"
)

// Ensure SummaryService implements the interface.
var _ driving.SummaryService = (*SummaryService)(nil)

// sectionInstruction is the per-section prompt used when a document
// needs more than one summarisation pass.
const sectionInstruction = "Summarize this section concisely"

// llmCallInterval paces successive AI calls as a cushion against
// provider rate limits.
const llmCallInterval = 400 * time.Millisecond

// SummaryService generates document summaries through the AI service.
// Long documents are summarised map-reduce style: each chunk gets its
// own summary, then the section summaries are combined in a final call.
type SummaryService struct {
	docStore driven.DocumentStore
	llm      driven.LLMService
	limiter  *rate.Limiter
}

// NewSummaryService creates a new summary service.
// The llm parameter is optional (can be nil); Summarise then reports
// domain.ErrLLMUnavailable.
func NewSummaryService(docStore driven.DocumentStore, llm driven.LLMService) *SummaryService {
	return &SummaryService{
		docStore: docStore,
		llm:      llm,
		limiter:  rate.NewLimiter(rate.Every(llmCallInterval), 1),
	}
}

// Summarise generates a summary at the given length and caches it on
// the document. A cached summary is returned without new AI calls
// unless refresh is true.
func (s *SummaryService) Summarise(
	ctx context.Context, documentID string, length domain.SummaryLength, refresh bool,
) (string, error) {
	if !length.IsValid() {
		return "", fmt.Errorf("%w: summary length %q", domain.ErrInvalidInput, length)
	}

	doc, err := s.docStore.GetDocument(ctx, documentID)
	if err != nil {
		return "", err
	}

	if doc.Summary != "" && !refresh {
		logger.Debug("Summary cache hit for document %s", documentID)
		return doc.Summary, nil
	}

	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}
	if strings.TrimSpace(doc.Content) == "" {
		return "", fmt.Errorf("%w: document %s has no text", domain.ErrNoContent, documentID)
	}

	logger.Section("Summarisation")
	logger.Debug("Length: %s, chunk bound: %d words", length, length.MaxChunkWords())

	summary, err := s.generate(ctx, doc.Content, length)
	if err != nil {
		return "", err
	}

	doc.Summary = summary
	doc.UpdatedAt = time.Now().UTC()
	if err := s.docStore.SaveDocument(ctx, doc); err != nil {
		return "", fmt.Errorf("cache summary: %w", err)
	}

	return summary, nil
}

// generate runs the chunked summarisation flow against the AI service.
func (s *SummaryService) generate(ctx context.Context, content string, length domain.SummaryLength) (string, error) {
	maxWords := length.MaxChunkWords()
	chunks, err := chunker.Split(content, maxWords/2, maxWords)
	if err != nil {
		return "", fmt.Errorf("chunk content: %w", err)
	}

	logger.Debug("Content split into %d section(s)", len(chunks))

	// A short document fits in one pass.
	if len(chunks) == 1 {
		summary, err := s.llm.Summarise(ctx, chunks[0].Content, length.Instruction()+" of this document")
		if err != nil {
			return "", fmt.Errorf("summarise: %w", err)
		}
		return strings.TrimSpace(summary), nil
	}

	sections := make([]string, 0, len(chunks))
	for i := range chunks {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}

		logger.Debug("Summarising section %d of %d", i+1, len(chunks))
		section, err := s.llm.Summarise(ctx, chunks[i].Content, sectionInstruction)
		if err != nil {
			return "", fmt.Errorf("summarise section %d: %w", i+1, err)
		}
		if section = strings.TrimSpace(section); section != "" {
			sections = append(sections, section)
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	combined := strings.Join(sections, "\n\n")
	final, err := s.llm.Summarise(ctx, combined, length.CombineInstruction())
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}

	logger.Info("Summary complete: %d sections combined", len(sections))

	return strings.TrimSpace(final), nil
}
