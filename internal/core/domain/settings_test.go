package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{OutputText, true},
		{OutputJSON, true},
		{OutputYAML, true},
		{"xml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 200, s.Analysis.WordsPerMinute)
	assert.Equal(t, 10, s.Analysis.CommonWords)
	assert.Equal(t, 5, s.Analysis.Keywords)
	assert.False(t, s.Analysis.Stem)
	assert.Equal(t, OutputText, s.Output.Format)
	assert.Equal(t, 250*time.Millisecond, s.Watch.MinInterval)
	assert.NoError(t, s.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppSettings)
	}{
		{"zero words per minute", func(s *AppSettings) { s.Analysis.WordsPerMinute = 0 }},
		{"negative words per minute", func(s *AppSettings) { s.Analysis.WordsPerMinute = -5 }},
		{"negative common words", func(s *AppSettings) { s.Analysis.CommonWords = -1 }},
		{"negative keywords", func(s *AppSettings) { s.Analysis.Keywords = -1 }},
		{"unknown format", func(s *AppSettings) { s.Output.Format = "csv" }},
		{"negative interval", func(s *AppSettings) { s.Watch.MinInterval = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultAppSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidSetting)
		})
	}
}

func TestSentimentLabel_String(t *testing.T) {
	assert.Equal(t, "positive", SentimentPositive.String())
	assert.Equal(t, "negative", SentimentNegative.String())
	assert.Equal(t, "neutral", SentimentNeutral.String())
}
