// Package domain defines the core entities for textstat.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Statistics: Counts and derived metrics for a block of text
//   - WordFrequency: A word and how often it occurs
//   - Sentiment: A rule-based sentiment classification
//   - Report: Every analysis of one text, bundled together
//   - RawDocument / Document: File input before and after normalisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
