// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/textstat/internal/core/domain"
)

// AnalysisCompleted carries a report back to the model.
// Seq increases with every edit so late results can be recognised.
type AnalysisCompleted struct {
	Seq    int
	Report *domain.Report
	Err    error
}

// IsCurrent reports whether the result answers the latest request.
func (m AnalysisCompleted) IsCurrent(latest int) bool {
	return m.Seq == latest
}
