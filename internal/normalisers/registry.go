package normalisers

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/logger"
	"github.com/custodia-labs/textstat/internal/normalisers/docx"
	"github.com/custodia-labs/textstat/internal/normalisers/eml"
	"github.com/custodia-labs/textstat/internal/normalisers/html"
	"github.com/custodia-labs/textstat/internal/normalisers/markdown"
	"github.com/custodia-labs/textstat/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches raw documents to normalisers by MIME type.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byMIME map[string][]driven.Normaliser
}

// NewRegistry creates an empty normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		byMIME: make(map[string][]driven.Normaliser),
	}
}

// NewDefaultRegistry creates a registry holding every built-in normaliser.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(docx.New())
	r.Register(eml.New())
	return r
}

// Register adds a normaliser for each MIME type it supports. Normalisers
// sharing a MIME type are kept in descending priority order.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, mimeType := range n.SupportedMIMETypes() {
		list := append(r.byMIME[mimeType], n)
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Priority() > list[j].Priority()
		})
		r.byMIME[mimeType] = list
	}
}

// Normalise transforms raw using the best normaliser for its MIME type.
// Unknown text/* types fall back to the text/plain normaliser.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	mimeType := baseMIMEType(raw.MIMEType)
	n := r.lookup(mimeType)
	if n == nil && strings.HasPrefix(mimeType, "text/") {
		n = r.lookup("text/plain")
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, raw.MIMEType)
	}

	logger.Debug("normalising %s as %s (priority %d)", raw.URI, mimeType, n.Priority())
	return n.Normalise(ctx, raw)
}

// SupportedMIMETypes returns all registered MIME types, sorted.
func (r *Registry) SupportedMIMETypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.byMIME))
	for mimeType := range r.byMIME {
		types = append(types, mimeType)
	}
	sort.Strings(types)
	return types
}

func (r *Registry) lookup(mimeType string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list := r.byMIME[mimeType]; len(list) > 0 {
		return list[0]
	}
	return nil
}

// baseMIMEType strips parameters such as charset and lower-cases the type.
func baseMIMEType(mimeType string) string {
	if mediaType, _, err := mime.ParseMediaType(mimeType); err == nil {
		return mediaType
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// extensionTypes covers extensions the platform MIME table may not know.
var extensionTypes = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".mdown":    "text/markdown",
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/x-log",
	".rst":      "text/x-rst",
	".csv":      "text/csv",
	".htm":      "text/html",
	".html":     "text/html",
	".xhtml":    "application/xhtml+xml",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".eml":      "message/rfc822",
	".json":     "application/json",
	".xml":      "application/xml",
}

// DetectMIMEType infers a MIME type from a file name. Files without a
// recognised extension are treated as plain text.
func DetectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "text/plain"
	}
	if mimeType, ok := extensionTypes[ext]; ok {
		return mimeType
	}
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return baseMIMEType(mimeType)
	}
	return "text/plain"
}
