package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		// c-a-k-e: two vowel runs, less one for the final e.
		{"cake", 1},
		{"the", 1},
		{"hello", 2},
		{"Hello!", 2},
		{"rhythm", 1},
		{"beautiful", 3},
		{"apple", 1},
		{"queue", 1},
		{"yes", 1},
		{"free", 1},
		{"syllable", 2},
		{"extraordinary", 5},
		{"", 1},
		{"123", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, CountSyllables(tt.word))
		})
	}
}

func TestReadabilityScore(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"empty", "", 0},
		{"whitespace", "   ", 0},
		{"no sentences", "...", 0},
		{"pangram", "The quick brown fox jumps over the lazy dog.", 94.3},
		{"mid range", "Reading comprehension matters. Simple words help.", 48.7},
		{"clamped high", "The cat sat.", 100},
		{"clamped low", "Extraordinary circumstances necessitate considerable deliberation.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadabilityScore(tt.input))
		})
	}
}

func TestReadabilityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "very easy"},
		{90, "very easy"},
		{89.9, "easy"},
		{75, "fairly easy"},
		{60, "standard"},
		{55.5, "fairly difficult"},
		{30, "difficult"},
		{29.9, "very difficult"},
		{0, "very difficult"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ReadabilityLevel(tt.score), "score %v", tt.score)
	}
}
