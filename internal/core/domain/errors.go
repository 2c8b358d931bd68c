package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoContent indicates a document has no text to summarise or
	// search. Surfaced to the caller before any AI call is attempted.
	ErrNoContent = errors.New("no content")

	// ErrUnsupportedType indicates an unknown upload MIME type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates text extraction from an upload failed.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrLLMUnavailable indicates the LLM service is not configured or
	// unreachable. Summarisation and Q&A are disabled without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRateLimited indicates the AI provider rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
