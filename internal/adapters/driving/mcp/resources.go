package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textstat/internal/core/analysis"
)

const (
	// uriScheme is the custom URI scheme for textstat resources.
	uriScheme = "textstat://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Default reading rate and result counts used when a tool argument is omitted",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "lexicons/{name}",
		Name:        "lexicon",
		Description: "Word lists used by the analyses: stopwords, positive or negative",
		MIMEType:    "application/json",
	}, s.handleLexiconResource)
}

// handleSettingsResource returns the analysis defaults.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type settingsInfo struct {
		WordsPerMinute int  `json:"words_per_minute"`
		CommonWords    int  `json:"common_words"`
		Keywords       int  `json:"keywords"`
		Stem           bool `json:"stem"`
	}

	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}

	return jsonResource(req.Params.URI, settingsInfo{
		WordsPerMinute: settings.Analysis.WordsPerMinute,
		CommonWords:    settings.Analysis.CommonWords,
		Keywords:       settings.Analysis.Keywords,
		Stem:           settings.Analysis.Stem,
	})
}

// handleLexiconResource returns one of the built-in word lists.
func (s *Server) handleLexiconResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractLexiconName(req.Params.URI)
	words, ok := analysis.Lexicon(name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, words)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractLexiconName extracts the name from a URI like textstat://lexicons/{name}.
func extractLexiconName(uri string) string {
	const prefix = uriScheme + "lexicons/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
