package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textstat/internal/core/analysis"
	"github.com/custodia-labs/textstat/internal/core/domain"
)

// TextInput is the input schema for tools that only take text.
type TextInput struct {
	Text string `json:"text" jsonschema:"the text to analyse"`
}

// AnalyzeInput is the input schema for the analyze_text tool.
type AnalyzeInput struct {
	Text           string `json:"text" jsonschema:"the text to analyse"`
	WordsPerMinute int    `json:"words_per_minute,omitempty" jsonschema:"reading rate (default from settings, usually 200)"`
	CommonWords    int    `json:"common_words,omitempty" jsonschema:"number of common words to return (default from settings)"`
	Keywords       int    `json:"keywords,omitempty" jsonschema:"number of keywords to return (default from settings)"`
	Stem           bool   `json:"stem,omitempty" jsonschema:"group common words by stem"`
}

// CountInput is the input schema for tools returning the top n items.
type CountInput struct {
	Text string `json:"text" jsonschema:"the text to analyse"`
	N    int    `json:"n,omitempty" jsonschema:"number of results to return (default from settings)"`
}

// CommonWordsInput is the input schema for the common_words tool.
type CommonWordsInput struct {
	Text string `json:"text" jsonschema:"the text to analyse"`
	N    int    `json:"n,omitempty" jsonschema:"number of words to return (default from settings)"`
	Stem bool   `json:"stem,omitempty" jsonschema:"group inflections of a word under one stem"`
}

// ReadingTimeInput is the input schema for the reading_time tool.
type ReadingTimeInput struct {
	Text           string `json:"text" jsonschema:"the text to analyse"`
	WordsPerMinute int    `json:"words_per_minute,omitempty" jsonschema:"reading rate (default from settings, usually 200)"`
}

// ReportOutput is the output schema for the analyze_text tool.
type ReportOutput struct {
	ID          string                 `json:"id"`
	Statistics  domain.Statistics      `json:"statistics"`
	Readability ReadabilityOutput      `json:"readability"`
	Sentiment   SentimentOutput        `json:"sentiment"`
	CommonWords []domain.WordFrequency `json:"common_words"`
	Keywords    []string               `json:"keywords"`
	CreatedAt   string                 `json:"created_at"`
}

// StatisticsOutput is the output schema for the text_statistics tool.
type StatisticsOutput struct {
	Statistics domain.Statistics `json:"statistics"`
}

// CommonWordsOutput is the output schema for the common_words tool.
type CommonWordsOutput struct {
	Words []domain.WordFrequency `json:"words"`
}

// KeywordsOutput is the output schema for the extract_keywords tool.
type KeywordsOutput struct {
	Keywords []string `json:"keywords"`
}

// SentimentOutput is the output schema for the sentiment tool.
type SentimentOutput struct {
	Label    string  `json:"sentiment"`
	Score    float64 `json:"score"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
}

// ReadabilityOutput is the output schema for the readability tool.
type ReadabilityOutput struct {
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// ReadingTimeOutput is the output schema for the reading_time tool.
type ReadingTimeOutput struct {
	Minutes float64 `json:"minutes"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_text",
		Description: "Run every analysis (statistics, readability, sentiment, common words, keywords) over a text",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "text_statistics",
		Description: "Count characters, words, sentences and paragraphs, with average word length and reading time",
	}, s.handleStatistics)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "common_words",
		Description: "List the most frequent words, excluding stop words and words of two letters or fewer",
	}, s.handleCommonWords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_keywords",
		Description: "Extract keywords scored by frequency, favouring longer words",
	}, s.handleKeywords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sentiment",
		Description: "Classify a text as positive, negative or neutral using word lexicons",
	}, s.handleSentiment)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "readability",
		Description: "Score a text with the Flesch Reading Ease formula (0 difficult to 100 easy)",
	}, s.handleReadability)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reading_time",
		Description: "Estimate reading time in minutes",
	}, s.handleReadingTime)
}

// handleAnalyze handles the analyze_text tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, ReportOutput, error) {
	opts := domain.AnalysisOptions{
		WordsPerMinute: input.WordsPerMinute,
		CommonWords:    input.CommonWords,
		Keywords:       input.Keywords,
		Stem:           input.Stem,
	}

	report, err := s.ports.Analyzer.Analyze(ctx, input.Text, opts)
	if err != nil {
		return nil, ReportOutput{}, err
	}

	return nil, ReportOutput{
		ID:          report.ID,
		Statistics:  report.Statistics,
		Readability: newReadabilityOutput(report.Readability),
		Sentiment:   newSentimentOutput(report.Sentiment),
		CommonWords: nonNil(report.CommonWords),
		Keywords:    nonNil(report.Keywords),
		CreatedAt:   report.CreatedAt.Format(time.RFC3339),
	}, nil
}

// handleStatistics handles the text_statistics tool invocation.
func (s *Server) handleStatistics(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, StatisticsOutput, error) {
	stats, err := s.ports.Analyzer.Statistics(ctx, input.Text)
	if err != nil {
		return nil, StatisticsOutput{}, err
	}
	return nil, StatisticsOutput{Statistics: stats}, nil
}

// handleCommonWords handles the common_words tool invocation.
func (s *Server) handleCommonWords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CommonWordsInput,
) (*mcp.CallToolResult, CommonWordsOutput, error) {
	words, err := s.ports.Analyzer.CommonWords(ctx, input.Text, input.N, input.Stem)
	if err != nil {
		return nil, CommonWordsOutput{}, err
	}
	return nil, CommonWordsOutput{Words: nonNil(words)}, nil
}

// handleKeywords handles the extract_keywords tool invocation.
func (s *Server) handleKeywords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CountInput,
) (*mcp.CallToolResult, KeywordsOutput, error) {
	keywords, err := s.ports.Analyzer.Keywords(ctx, input.Text, input.N)
	if err != nil {
		return nil, KeywordsOutput{}, err
	}
	return nil, KeywordsOutput{Keywords: nonNil(keywords)}, nil
}

// handleSentiment handles the sentiment tool invocation.
func (s *Server) handleSentiment(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, SentimentOutput, error) {
	result, err := s.ports.Analyzer.Sentiment(ctx, input.Text)
	if err != nil {
		return nil, SentimentOutput{}, err
	}
	return nil, newSentimentOutput(result), nil
}

// handleReadability handles the readability tool invocation.
func (s *Server) handleReadability(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TextInput,
) (*mcp.CallToolResult, ReadabilityOutput, error) {
	score, err := s.ports.Analyzer.Readability(ctx, input.Text)
	if err != nil {
		return nil, ReadabilityOutput{}, err
	}
	return nil, newReadabilityOutput(score), nil
}

// handleReadingTime handles the reading_time tool invocation.
func (s *Server) handleReadingTime(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadingTimeInput,
) (*mcp.CallToolResult, ReadingTimeOutput, error) {
	minutes, err := s.ports.Analyzer.ReadingTime(ctx, input.Text, input.WordsPerMinute)
	if err != nil {
		return nil, ReadingTimeOutput{}, err
	}
	return nil, ReadingTimeOutput{Minutes: minutes}, nil
}

func newSentimentOutput(s domain.Sentiment) SentimentOutput {
	return SentimentOutput{
		Label:    s.Label.String(),
		Score:    s.Score,
		Positive: s.Positive,
		Negative: s.Negative,
	}
}

func newReadabilityOutput(score float64) ReadabilityOutput {
	return ReadabilityOutput{
		Score: score,
		Level: analysis.ReadabilityLevel(score),
	}
}

// nonNil returns an empty slice for nil so results encode as [] not null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
