// Package mcp provides an MCP (Model Context Protocol) server adapter for textstat.
// It lets AI assistants run the text analyses as tools.
package mcp

import "errors"

// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
var ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")
