package mcp

import (
	"github.com/custodia-labs/textstat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer runs the text analyses.
	Analyzer driving.AnalyzerService

	// Settings exposes the configured defaults as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	return nil
}
