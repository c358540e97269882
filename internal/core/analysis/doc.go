// Package analysis computes descriptive statistics and heuristic analyses
// over a block of natural-language text.
//
// Every function is pure: it reads its string argument, allocates its
// result, and keeps no state between calls. Functions are safe for
// unlimited concurrent use.
//
// # Tokenization
//
// Two tokenizers are used deliberately and are not interchangeable:
//
//   - Whitespace split: runs of whitespace separate tokens and
//     punctuation stays attached ("great!" is one token). Used by the
//     counters, statistics, sentiment and the syllable sum in readability.
//   - Word boundary: maximal runs of letters, numbers and underscore
//     after lower-casing ("great!" yields "great"). Used by most-common
//     words and keyword extraction.
//
// # Rounding
//
// Rounded outputs use round-half-to-even on the exact binary value of
// the float64, so 0.25 rounds to 0.2 and 0.35 (stored as 0.34999...)
// rounds to 0.3.
package analysis
