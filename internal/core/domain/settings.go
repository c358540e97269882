package domain

import "time"

// OutputFormat selects how results are rendered by the CLI.
type OutputFormat string

// Available output formats.
const (
	// OutputText renders styled, human-readable text.
	OutputText OutputFormat = "text"

	// OutputJSON renders indented JSON.
	OutputJSON OutputFormat = "json"

	// OutputYAML renders YAML.
	OutputYAML OutputFormat = "yaml"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Default analysis parameters.
const (
	DefaultWordsPerMinute = 200
	DefaultCommonWords    = 10
	DefaultKeywords       = 5
	DefaultWatchInterval  = 250 * time.Millisecond
)

// AnalysisSettings holds the defaults used when a caller leaves a
// parameter unset.
type AnalysisSettings struct {
	WordsPerMinute int
	CommonWords    int
	Keywords       int
	Stem           bool
}

// OutputSettings controls CLI rendering.
type OutputSettings struct {
	Format OutputFormat
}

// WatchSettings controls the file watcher.
type WatchSettings struct {
	// MinInterval is the minimum spacing between re-analyses.
	MinInterval time.Duration
}

// AppSettings is the aggregate of all user-configurable settings.
type AppSettings struct {
	Analysis AnalysisSettings
	Output   OutputSettings
	Watch    WatchSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Analysis: AnalysisSettings{
			WordsPerMinute: DefaultWordsPerMinute,
			CommonWords:    DefaultCommonWords,
			Keywords:       DefaultKeywords,
		},
		Output: OutputSettings{
			Format: OutputText,
		},
		Watch: WatchSettings{
			MinInterval: DefaultWatchInterval,
		},
	}
}

// Validate checks the settings are usable.
func (s AppSettings) Validate() error {
	if s.Analysis.WordsPerMinute <= 0 {
		return ErrInvalidSetting
	}
	if s.Analysis.CommonWords < 0 || s.Analysis.Keywords < 0 {
		return ErrInvalidSetting
	}
	if !s.Output.Format.IsValid() {
		return ErrInvalidSetting
	}
	if s.Watch.MinInterval < 0 {
		return ErrInvalidSetting
	}
	return nil
}
