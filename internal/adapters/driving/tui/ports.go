// Package tui provides an interactive terminal user interface for textstat.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/textstat/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer runs the text analyses.
	Analyzer driving.AnalyzerService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(analyzer driving.AnalyzerService) *Ports {
	return &Ports{
		Analyzer: analyzer,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	return nil
}
