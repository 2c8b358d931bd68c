// Package domain defines the core business entities for IntelliDoc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded document with extracted text and summary
//   - Chunk: A bounded-size slice of document text, ordered by position
//   - Selection: A ranked subset of chunks chosen for a question
//   - User: A temporary session-scoped identity
//   - QAInteraction: A stored question/answer pair for a document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
