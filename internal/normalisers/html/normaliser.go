package html

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/logger"
	"github.com/custodia-labs/textstat/internal/normalisers/document"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Elements whose text never counts as prose.
const ignoredSelector = "head, script, style, noscript, svg, template, iframe"

// Elements treated as one paragraph each.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, pre, td, th, dt, dd, figcaption, caption"

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser, higher than plaintext
}

// Normalise converts an HTML document to a normalised document.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	page, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	title := strings.TrimSpace(page.Find("title").First().Text())

	content := ""
	article, err := readability.FromReader(bytes.NewReader(raw.Content), pageURL(raw.URI))
	if err != nil {
		logger.Debug("readability failed for %s: %v", raw.URI, err)
	} else {
		if title == "" {
			title = strings.TrimSpace(article.Title)
		}
		content = articleText(article.Content)
	}
	if content == "" {
		content = extractText(page)
	}

	doc := document.New(raw, title, content, "html")
	if err == nil {
		if article.Byline != "" {
			doc.Metadata["byline"] = article.Byline
		}
		if article.SiteName != "" {
			doc.Metadata["site_name"] = article.SiteName
		}
		if article.Language != "" {
			doc.Metadata["language"] = article.Language
		}
	}
	return doc, nil
}

// TextFromHTML renders an HTML document or fragment as paragraphs of
// plain text without attempting article extraction.
func TextFromHTML(src string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return ""
	}
	return extractText(doc)
}

// pageURL resolves the base URL readability uses for relative links.
func pageURL(uri string) *url.URL {
	if u, err := url.Parse(uri); err == nil && u.Scheme != "" {
		return u
	}
	return &url.URL{Scheme: "file", Path: uri}
}

// articleText renders the HTML fragment readability returns as text.
func articleText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	return TextFromHTML(fragment)
}

// extractText joins the text of the innermost block elements with blank
// lines. Pages without block markup fall back to the body text.
func extractText(doc *goquery.Document) string {
	doc.Find(ignoredSelector).Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		blocks = append(blocks, collapseSpaces(s.Text()))
	})
	if text := document.JoinParagraphs(blocks); text != "" {
		return text
	}

	return collapseSpaces(doc.Find("body").Text())
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
