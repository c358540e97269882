package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

func TestAnalyzeCmd_Flags(t *testing.T) {
	for _, name := range []string{"wpm", "common", "keywords", "stem"} {
		assert.NotNil(t, analyzeCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "n", analyzeCmd.Flags().Lookup("common").Shorthand)
	assert.Equal(t, "k", analyzeCmd.Flags().Lookup("keywords").Shorthand)
}

func TestAnalyzeCmd_Text(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "analyze")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Text Analysis\n")
	assert.Contains(t, stdout, "Source: stdin")
	assert.Regexp(t, `Words:\s+16\n`, stdout)
	assert.Regexp(t, `Paragraphs:\s+2\n`, stdout)
	assert.Regexp(t, `Readability:\s+95\.7 \(very easy\)\n`, stdout)
	assert.Regexp(t, `Sentiment:\s+positive\n`, stdout)
	assert.Contains(t, stdout, "Common Words\n")
	assert.Regexp(t, `1\. quick\s+2\n`, stdout)
	assert.Contains(t, stdout, "Keywords\n")
	assert.Contains(t, stdout, " 2. jumping\n")
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "--format", "json", "analyze", "-n", "1", "-k", "2", "--wpm", "100")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 16, report.Statistics.Words)
	assert.Equal(t, 0.2, report.Statistics.ReadingTime)
	assert.Equal(t, []domain.WordFrequency{{Word: "quick", Count: 2}}, report.CommonWords)
	assert.Equal(t, []string{"quick", "jumping"}, report.Keywords)
}

func TestAnalyzeCmd_Stem(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, sampleText, "--format", "json", "analyze", "-n", "1", "--stem")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, []domain.WordFrequency{{Word: "fox", Count: 3}}, report.CommonWords)
}

func TestAnalyzeCmd_Arguments(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, "", "--format", "json", "analyze", "I love this", "wonderful day")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, sourceArgs, report.Source)
	assert.Equal(t, 5, report.Statistics.Words)
	assert.Equal(t, domain.SentimentPositive, report.Sentiment.Label)
	assert.Equal(t, 2, report.Sentiment.Positive)
}

func TestAnalyzeCmd_File(t *testing.T) {
	useServices(t, newTestServices())
	path := writeTempFile(t, "notes.txt", sampleText)

	stdout, _, err := executeCommand(t, "", "--file", path, "analyze")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Text Analysis: notes\n")
	assert.Contains(t, stdout, "Source: "+path)
	assert.Regexp(t, `Words:\s+16\n`, stdout)
}

func TestAnalyzeCmd_EmptyText(t *testing.T) {
	useServices(t, newTestServices())

	stdout, _, err := executeCommand(t, "   ", "analyze")
	require.NoError(t, err)

	assert.Regexp(t, `Words:\s+0\n`, stdout)
	assert.Regexp(t, `Sentiment:\s+neutral\n`, stdout)
	assert.Contains(t, stdout, "(none)")
}

func TestAnalyzeCmd_InvalidCount(t *testing.T) {
	useServices(t, newTestServices())

	_, _, err := executeCommand(t, sampleText, "analyze", "--keywords", "-1")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "analysis failed")
}

func TestAnalyzeCmd_ServiceError(t *testing.T) {
	boom := errors.New("boom")
	useServices(t, &Services{Analyzer: &mockAnalyzerService{err: boom}})

	_, _, err := executeCommand(t, "", "analyze", "text")
	assert.ErrorIs(t, err, boom)
}
