// Package extractors provides implementations of the Extractor interface
// for various upload formats. Each extractor knows how to pull plain text
// content out of a specific MIME type.
//
// Extractors are registered with the ExtractorRegistry at startup.
package extractors
