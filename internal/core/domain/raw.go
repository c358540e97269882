package domain

// RawDocument represents opaque bytes read from a file.
// It is the input to normalisation.
type RawDocument struct {
	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (e.g., "text/html").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains reader-specific key-value pairs.
	Metadata map[string]any
}
