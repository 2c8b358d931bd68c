// Package chunker provides a word-bounded text chunking processor.
//
// Chunks accumulate whitespace-delimited words until a hard word cap is
// reached, or until a paragraph break is crossed once the chunk already
// holds enough words. Chunk boundaries never fall inside a word, and
// chunk contents are slices of the source text, so concatenating all
// chunks in order reproduces the document modulo the whitespace between
// chunk boundaries.
package chunker

import (
	"context"
	"fmt"
	"unicode"

	"github.com/google/uuid"

	"github.com/intellidoc-labs/intellidoc/internal/core/domain"
)

// DefaultMinWords is the default minimum number of words per chunk.
const DefaultMinWords = 100

// DefaultMaxWords is the default maximum number of words per chunk.
const DefaultMaxWords = 1200

// Processor splits document content into word-bounded chunks.
// It implements the PostProcessor interface.
type Processor struct {
	minWords int
	maxWords int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithMinWords sets the minimum words per chunk.
func WithMinWords(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minWords = n
		}
	}
}

// WithMaxWords sets the maximum words per chunk.
func WithMaxWords(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxWords = n
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		minWords: DefaultMinWords,
		maxWords: DefaultMaxWords,
	}

	for _, opt := range opts {
		opt(p)
	}

	// Ensure the bounds stay ordered
	if p.minWords > p.maxWords {
		p.minWords = p.maxWords
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	if doc == nil {
		return nil, domain.ErrInvalidInput
	}

	chunks, err := Split(doc.Content, p.minWords, p.maxWords)
	if err != nil {
		return nil, err
	}

	for i := range chunks {
		chunks[i].ID = uuid.New().String()
		chunks[i].DocumentID = doc.ID
		chunks[i].Metadata = make(map[string]any)
	}

	return chunks, nil
}

// word is a whitespace-delimited token located within the source text.
type word struct {
	start, end int

	// paragraphStart is true when a blank line precedes this word.
	paragraphStart bool
}

// Split divides text into ordered chunks of minWords to maxWords words.
//
// A chunk closes when it reaches maxWords, or when the next word starts
// a new paragraph and the chunk already holds at least minWords. The
// final chunk may be shorter than minWords. Empty or whitespace-only
// text yields no chunks.
//
// Chunk contents are contiguous slices of text between the first and
// last word of the chunk, so internal whitespace is preserved exactly.
func Split(text string, minWords, maxWords int) ([]domain.Chunk, error) {
	if minWords <= 0 || maxWords < minWords {
		return nil, fmt.Errorf("%w: chunk bounds min=%d max=%d", domain.ErrInvalidInput, minWords, maxWords)
	}

	words := scanWords(text)
	if len(words) == 0 {
		return nil, nil
	}

	chunks := make([]domain.Chunk, 0, len(words)/maxWords+1)
	first := 0
	count := 0

	for i := range words {
		count++

		closeHere := count == maxWords || i == len(words)-1
		if !closeHere && count >= minWords && words[i+1].paragraphStart {
			closeHere = true
		}

		if closeHere {
			start := words[first].start
			end := words[i].end
			chunks = append(chunks, domain.Chunk{
				Content:     text[start:end],
				Position:    len(chunks),
				WordCount:   count,
				StartOffset: start,
				EndOffset:   end,
			})
			first = i + 1
			count = 0
		}
	}

	return chunks, nil
}

// scanWords tokenises text into words with byte offsets, marking words
// that follow a blank line as paragraph starts.
func scanWords(text string) []word {
	var words []word

	inWord := false
	start := 0
	newlines := 0
	breakPending := false
	afterBreak := false

	for i, r := range text {
		if unicode.IsSpace(r) {
			if inWord {
				words = append(words, word{start: start, end: i, paragraphStart: afterBreak})
				inWord = false
			}
			if r == '\n' {
				newlines++
				if newlines >= 2 {
					breakPending = true
				}
			}
			continue
		}

		if !inWord {
			start = i
			inWord = true
			afterBreak = breakPending
			breakPending = false
			newlines = 0
		}
	}

	if inWord {
		words = append(words, word{start: start, end: len(text), paragraphStart: afterBreak})
	}

	return words
}
