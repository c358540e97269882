package driven

import (
	"context"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// Normaliser transforms raw file bytes into plain text.
// Each normaliser handles specific MIME types (e.g., HTML, Markdown).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise transforms a raw document into a plain-text document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)
}
