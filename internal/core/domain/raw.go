package domain

// RawUpload represents opaque bytes received from a user upload.
// It is the driving adapter's output before extraction.
type RawUpload struct {
	// UserID links to the User that performed the upload.
	UserID string

	// Filename is the original filename as supplied by the client.
	Filename string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains adapter-specific key-value pairs.
	Metadata map[string]any
}
