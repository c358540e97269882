package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

func TestStatsCmd_Text(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "stats")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Statistics\n")
	assert.Regexp(t, `Characters:\s+87\n`, stdout)
	assert.Regexp(t, `Characters \(no spaces\):\s+73\n`, stdout)
	assert.Regexp(t, `Words:\s+16\n`, stdout)
	assert.Regexp(t, `Sentences:\s+3\n`, stdout)
	assert.Regexp(t, `Reading time:\s+0\.1 minutes\n`, stdout)
}

func TestStatsCmd_JSON(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "--format", "json", "stats")
	require.NoError(t, err)

	var stats domain.Statistics
	require.NoError(t, json.Unmarshal([]byte(stdout), &stats))
	assert.Equal(t, 87, stats.Characters)
	assert.Equal(t, 16, stats.Words)
	assert.Equal(t, 3, stats.Sentences)
	assert.Equal(t, 2, stats.Paragraphs)
	assert.Equal(t, 0.1, stats.ReadingTime)
}

func TestStatsCmd_UsesConfiguredRate(t *testing.T) {
	s := newTestServices()
	require.NoError(t, s.Settings.Set("analysis.words_per_minute", "8"))
	useServices(t, s)

	stdout, _, err := executeCommand(t, sampleText, "stats")
	require.NoError(t, err)
	assert.Regexp(t, `Reading time:\s+2 minutes\n`, stdout)
}

func TestReadingTimeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default rate", []string{"reading-time"}, "0.1 minutes\n"},
		{"custom rate", []string{"reading-time", "--wpm", "8"}, "2 minutes\n"},
		{"singular", []string{"reading-time", "--wpm", "16"}, "1 minute\n"},
		{"json", []string{"--format", "json", "reading-time", "--wpm", "100"}, "{\n  \"reading_time\": 0.2\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useServices(t, newTestServices())

			stdout, _, err := executeCommand(t, sampleText, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestReadingTimeCmd_InvalidRate(t *testing.T) {
	useServices(t, newTestServices())

	_, _, err := executeCommand(t, sampleText, "reading-time", "--wpm", "-5")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "reading time failed")
}

func TestReadabilityCmd(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "readability")
	require.NoError(t, err)
	assert.Equal(t, "95.7 (very easy)\n", stdout)
}

func TestReadabilityCmd_JSON(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, "", "--format", "json", "readability", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"readability": 0, "level": "very difficult"}`, stdout)
}

func TestSyllablesCmd(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, "", "--format", "json", "syllables", "hello", "the", "rhythm")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"word": "hello", "syllables": 2},
		{"word": "the", "syllables": 1},
		{"word": "rhythm", "syllables": 1}
	]`, stdout)
}

func TestSyllablesCmd_Text(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, "", "syllables", "banana")
	require.NoError(t, err)
	assert.Regexp(t, `banana:\s+3\n`, stdout)
}

func TestSyllablesCmd_RequiresWord(t *testing.T) {
	useServices(t, newTestServices())

	_, _, err := executeCommand(t, "", "syllables")
	assert.Error(t, err)
}

func TestMetricsCmds_ServiceError(t *testing.T) {
	boom := errors.New("boom")
	for _, args := range [][]string{
		{"stats", "text"},
		{"reading-time", "text"},
		{"readability", "text"},
		{"syllables", "text"},
	} {
		t.Run(args[0], func(t *testing.T) {
			useServices(t, &Services{Analyzer: &mockAnalyzerService{err: boom}})

			_, _, err := executeCommand(t, "", args...)
			assert.ErrorIs(t, err, boom)
		})
	}
}
