// Package eml provides a normaliser for RFC 5322 email messages. Only the
// message body is analysed; headers are kept as metadata.
package eml

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"strings"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/normalisers/document"
	"github.com/custodia-labs/textstat/internal/normalisers/html"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles EML (email) documents.
type Normaliser struct{}

// New creates a new EML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"message/rfc822"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise converts an EML document to a normalised document. The
// subject becomes the title; text/plain parts are preferred over HTML.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	body, err := extractBody(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return nil, err
	}
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.TrimSpace(strings.ToValidUTF8(body, "�"))

	doc := document.New(raw, decodeHeader(msg.Header.Get("Subject")), body, "eml")
	for _, key := range []string{"From", "To", "Date"} {
		if v := decodeHeader(msg.Header.Get(key)); v != "" {
			doc.Metadata[strings.ToLower(key)] = v
		}
	}
	return doc, nil
}

// decodeHeader decodes RFC 2047 encoded headers.
func decodeHeader(header string) string {
	if header == "" {
		return ""
	}
	dec := new(mime.WordDecoder)
	decoded, err := dec.DecodeHeader(header)
	if err != nil {
		return header
	}
	return strings.TrimSpace(decoded)
}

// decodeTransfer undoes a Content-Transfer-Encoding. multipart.Reader
// already decodes quoted-printable parts, so only top-level bodies and
// base64 parts reach the non-identity branches.
func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

// extractBody extracts the text of a message or part body.
func extractBody(contentType, encoding string, r io.Reader) (string, error) {
	if contentType == "" {
		contentType = "text/plain"
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return extractMultipartBody(r, params["boundary"])
	}

	body, err := io.ReadAll(decodeTransfer(encoding, r))
	if err != nil {
		return "", domain.ErrInvalidInput
	}

	if mediaType == "text/html" {
		return html.TextFromHTML(string(body)), nil
	}
	return string(body), nil
}

// extractMultipartBody extracts text from multipart messages. Plain parts
// win over HTML parts; attachments are skipped.
func extractMultipartBody(r io.Reader, boundary string) (string, error) {
	if boundary == "" {
		return "", nil
	}

	mr := multipart.NewReader(r, boundary)
	var textParts, htmlParts []string

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}

		if disposition, _, _ := mime.ParseMediaType(part.Header.Get("Content-Disposition")); disposition == "attachment" {
			part.Close()
			continue
		}

		partType := part.Header.Get("Content-Type")
		mediaType, _, parseErr := mime.ParseMediaType(partType)
		if parseErr != nil {
			mediaType = "text/plain"
			partType = mediaType
		}

		text, textErr := extractBody(partType, part.Header.Get("Content-Transfer-Encoding"), part)
		part.Close()
		if textErr != nil || strings.TrimSpace(text) == "" {
			continue
		}

		if mediaType == "text/html" {
			htmlParts = append(htmlParts, text)
		} else if mediaType == "text/plain" || strings.HasPrefix(mediaType, "multipart/") {
			textParts = append(textParts, text)
		}
	}

	if len(textParts) > 0 {
		return strings.Join(textParts, "\n\n"), nil
	}
	return strings.Join(htmlParts, "\n\n"), nil
}
