// Package selector picks the document chunks most relevant to a
// question before anything is sent to the AI service.
//
// Scoring is plain lexical overlap: case-insensitive occurrence counts
// of the question's significant terms within each chunk. This is a
// cheap pre-filter to bound what reaches the paid, rate-limited AI
// call, not an answer-quality mechanism - the AI service downstream
// determines the final answer. Selection is deterministic for
// identical inputs, which keeps the only reproducible stage of the
// Q&A path testable.
package selector

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// DefaultTopK is the default number of chunks to select.
const DefaultTopK = 3

// Selector scores chunks against a question and keeps the best few.
type Selector struct {
	topK      int
	stopWords map[string]struct{}
}

// Option configures the selector.
type Option func(*Selector)

// WithTopK sets how many chunks to select. Values below 1 are rejected
// by Select with domain.ErrInvalidInput.
func WithTopK(k int) Option {
	return func(s *Selector) {
		s.topK = k
	}
}

// WithStopWords replaces the default stop-word list.
func WithStopWords(words []string) Option {
	return func(s *Selector) {
		s.stopWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			s.stopWords[strings.ToLower(w)] = struct{}{}
		}
	}
}

// New creates a selector with the given options.
func New(opts ...Option) *Selector {
	s := &Selector{
		topK: DefaultTopK,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.stopWords == nil {
		s.stopWords = make(map[string]struct{}, len(defaultStopWords))
		for _, w := range defaultStopWords {
			s.stopWords[w] = struct{}{}
		}
	}

	return s
}

// Select scores every chunk against the question and returns the topK
// highest scorers, ordered by score descending with ties broken by
// ascending position. Empty chunk input yields an empty selection; the
// caller reports "no content" instead of calling the AI service.
//
// When no question term appears in any chunk, the selection still holds
// the first topK chunks in document order, so the caller always has
// context to send.
func (s *Selector) Select(question string, chunks []domain.Chunk) (domain.Selection, error) {
	if s.topK < 1 {
		return domain.Selection{}, fmt.Errorf("%w: top_k must be >= 1, got %d", domain.ErrInvalidInput, s.topK)
	}

	selection := domain.Selection{Question: question}
	if len(chunks) == 0 {
		return selection, nil
	}

	terms := s.significantTerms(question)

	scored := make([]domain.ScoredChunk, len(chunks))
	for i := range chunks {
		scored[i] = domain.ScoredChunk{
			Chunk: chunks[i],
			Score: overlapScore(terms, chunks[i].Content),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Chunk.Position < scored[j].Chunk.Position
	})

	k := s.topK
	if k > len(scored) {
		k = len(scored)
	}
	selection.Chunks = scored[:k]

	return selection, nil
}

// significantTerms extracts the distinct lowercase terms of the
// question with stop-words removed.
func (s *Selector) significantTerms(question string) []string {
	seen := make(map[string]struct{})
	var terms []string

	for _, term := range tokenise(question) {
		if _, stop := s.stopWords[term]; stop {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	return terms
}

// overlapScore counts occurrences of the question terms within content.
func overlapScore(terms []string, content string) float64 {
	if len(terms) == 0 {
		return 0
	}

	counts := make(map[string]int)
	for _, token := range tokenise(content) {
		counts[token]++
	}

	var score float64
	for _, term := range terms {
		score += float64(counts[term])
	}

	return score
}

// tokenise splits text into lowercase alphanumeric terms.
func tokenise(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
