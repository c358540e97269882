// Package document holds the helpers every normaliser uses to turn a raw
// file into a domain.Document.
package document

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// New builds a Document from raw with the given title, extracted text and
// format tag. Metadata from raw is copied, never shared.
func New(raw *domain.RawDocument, title, content, format string) *domain.Document {
	if title == "" {
		title = TitleFromURI(raw.URI)
	}

	metadata := make(map[string]any, len(raw.Metadata)+2)
	for k, v := range raw.Metadata {
		metadata[k] = v
	}
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = format

	return &domain.Document{
		ID:        uuid.New().String(),
		URI:       raw.URI,
		Title:     title,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now(),
	}
}

// TitleFromURI derives a readable title from a file name:
// "release_notes-v2.md" becomes "release notes v2".
func TitleFromURI(uri string) string {
	if uri == "" {
		return ""
	}
	name := filepath.Base(uri)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.TrimSpace(name)
}

// JoinParagraphs joins non-blank blocks with a blank line so paragraph
// counting sees one paragraph per block.
func JoinParagraphs(blocks []string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, "\n\n")
}
