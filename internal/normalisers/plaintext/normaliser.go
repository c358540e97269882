// Package plaintext provides the fallback normaliser for text files.
package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/normalisers/document"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const byteOrderMark = "\uFEFF"

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"text/plain",
		"text/csv",
		"text/x-rst",
		"text/x-log",
		"application/json",
		"application/xml",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback
}

// Normalise converts a plain text document to a normalised document.
// Line endings are unified to "\n" so blank-line paragraph breaks survive
// files written on Windows. Invalid UTF-8 is replaced with U+FFFD.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.ToValidUTF8(string(raw.Content), "�")
	content = strings.TrimPrefix(content, byteOrderMark)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return document.New(raw, "", content, "plaintext"), nil
}
