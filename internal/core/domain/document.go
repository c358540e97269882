package domain

import "time"

// Document represents a file after normalisation.
// Content is the plain text handed to the analyzer.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was normalised.
	CreatedAt time.Time
}
