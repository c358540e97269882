// Package markdown provides a normaliser that reduces Markdown to prose.
package markdown

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/normalisers/document"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/markdown", "text/x-markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts a markdown document to a normalised document.
// Markup is stripped, code blocks are dropped and blank lines between
// blocks are kept so paragraphs can still be counted.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.ReplaceAll(string(raw.Content), "\r\n", "\n")

	return document.New(raw, extractTitle(content), stripMarkdown(content), "markdown"), nil
}

// extractTitle returns the text of the first level-one heading, or "".
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimRight(strings.TrimPrefix(line, "#"), "#"))
		}
	}
	return ""
}

type rewrite struct {
	pattern *regexp.Regexp
	repl    string
}

// Applied in order. Horizontal rules go before list markers and emphasis,
// which would otherwise eat their characters.
var rewrites = []rewrite{
	{regexp.MustCompile("(?s)```.*?```"), ""},
	{regexp.MustCompile("(?s)~~~.*?~~~"), ""},
	{regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`), ""},
	{regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`), "$1"},
	{regexp.MustCompile("`([^`\n]+)`"), "$1"},
	{regexp.MustCompile(`(?m)^ {0,3}(?:(?:-[ \t]*){3,}|(?:\*[ \t]*){3,}|(?:_[ \t]*){3,})$`), ""},
	{regexp.MustCompile(`(?m)^[ \t]{0,3}#{1,6}[ \t]+`), ""},
	{regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`), ""},
	{regexp.MustCompile(`(?m)^[ \t]*(?:[-*+]|\d+[.)])[ \t]+`), ""},
	{regexp.MustCompile(`\*\*([^*\n]+)\*\*`), "$1"},
	{regexp.MustCompile(`__([^_\n]+)__`), "$1"},
	{regexp.MustCompile(`\*([^*\n]+)\*`), "$1"},
	{regexp.MustCompile(`(^|\W)_([^_\n]+)_(\W|$)`), "$1$2$3"},
	{regexp.MustCompile(`~~([^~\n]+)~~`), "$1"},
	{regexp.MustCompile(`\n{3,}`), "\n\n"},
}

// stripMarkdown removes common markdown formatting for plain text content.
func stripMarkdown(content string) string {
	for _, r := range rewrites {
		content = r.pattern.ReplaceAllString(content, r.repl)
	}
	return strings.TrimSpace(content)
}
