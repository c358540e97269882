package tui

import "errors"

// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
var ErrMissingAnalyzerService = errors.New("tui: analyzer service is required")
