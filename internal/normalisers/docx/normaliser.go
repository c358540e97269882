// Package docx provides a normaliser for Word (Office Open XML) documents.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/normalisers/document"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	documentPart = "word/document.xml"
	corePart     = "docProps/core.xml"

	// maxPartSize caps how much of a single archive member is inflated.
	maxPartSize = 64 << 20
)

// Normaliser handles DOCX documents.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50 // Generic MIME normaliser
}

// Normalise extracts the body text of a DOCX document. Each Word
// paragraph, including those inside tables, becomes one paragraph of
// output separated by a blank line.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var content string
	if body, ok, err := readPart(reader, documentPart); err != nil {
		return nil, err
	} else if ok {
		paragraphs, err := parseParagraphs(body)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		content = document.JoinParagraphs(paragraphs)
	}

	props := readCoreProperties(reader)

	doc := document.New(raw, props.Title, content, "docx")
	if props.Creator != "" {
		doc.Metadata["author"] = props.Creator
	}
	return doc, nil
}

// readPart returns the contents of the named archive member.
func readPart(reader *zip.Reader, name string) ([]byte, bool, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, false, domain.ErrInvalidInput
		}
		defer rc.Close()

		content, err := io.ReadAll(io.LimitReader(rc, maxPartSize))
		if err != nil {
			return nil, false, domain.ErrInvalidInput
		}
		return content, true, nil
	}
	return nil, false, nil
}

// parseParagraphs walks WordprocessingML and returns the text of each
// w:p element. Runs are concatenated; w:tab becomes a tab and w:br a
// line break.
func parseParagraphs(content []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "pPr", "rPr":
				// Property blocks carry tab stop definitions, not text.
				if err := decoder.Skip(); err != nil {
					return nil, err
				}
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}

// coreProperties holds the fields read from docProps/core.xml.
type coreProperties struct {
	Title   string `xml:"title"`
	Creator string `xml:"creator"`
}

func readCoreProperties(reader *zip.Reader) coreProperties {
	var props coreProperties
	content, ok, err := readPart(reader, corePart)
	if err != nil || !ok {
		return props
	}
	if err := xml.Unmarshal(content, &props); err != nil {
		return coreProperties{}
	}
	props.Title = strings.TrimSpace(props.Title)
	props.Creator = strings.TrimSpace(props.Creator)
	return props
}
