// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Pulls plain text out of an upload
//   - ExtractorRegistry: Selects the extractor for a MIME type
//   - PostProcessorPipeline: Produces chunks from document content
//   - DocumentStore: Document and chunk persistence
//   - UserStore: Session user persistence
//   - QAStore: Question/answer history persistence
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Text generation. Without it, summarisation and Q&A
//     report ErrLLMUnavailable; upload and browsing keep working.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
