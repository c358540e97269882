package mcp

import (
	"context"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// mockAnalyzerService is a mock implementation of driving.AnalyzerService.
// It records the last text, count and options it was called with.
type mockAnalyzerService struct {
	report      *domain.Report
	stats       domain.Statistics
	words       []domain.WordFrequency
	keywords    []string
	sentiment   domain.Sentiment
	readability float64
	minutes     float64
	err         error

	lastText string
	lastN    int
	lastStem bool
	lastOpts domain.AnalysisOptions
}

func (m *mockAnalyzerService) Analyze(
	_ context.Context, text string, opts domain.AnalysisOptions,
) (*domain.Report, error) {
	m.lastText = text
	m.lastOpts = opts
	return m.report, m.err
}

func (m *mockAnalyzerService) AnalyzeDocument(
	_ context.Context, _ *domain.RawDocument, opts domain.AnalysisOptions,
) (*domain.Report, error) {
	m.lastOpts = opts
	return m.report, m.err
}

func (m *mockAnalyzerService) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Document{URI: raw.URI, Content: string(raw.Content)}, nil
}

func (m *mockAnalyzerService) Statistics(_ context.Context, text string) (domain.Statistics, error) {
	m.lastText = text
	return m.stats, m.err
}

func (m *mockAnalyzerService) ReadingTime(_ context.Context, text string, wordsPerMinute int) (float64, error) {
	m.lastText = text
	m.lastN = wordsPerMinute
	return m.minutes, m.err
}

func (m *mockAnalyzerService) CommonWords(
	_ context.Context, text string, n int, stem bool,
) ([]domain.WordFrequency, error) {
	m.lastText = text
	m.lastN = n
	m.lastStem = stem
	return m.words, m.err
}

func (m *mockAnalyzerService) Keywords(_ context.Context, text string, n int) ([]string, error) {
	m.lastText = text
	m.lastN = n
	return m.keywords, m.err
}

func (m *mockAnalyzerService) Sentiment(_ context.Context, text string) (domain.Sentiment, error) {
	m.lastText = text
	return m.sentiment, m.err
}

func (m *mockAnalyzerService) Readability(_ context.Context, text string) (float64, error) {
	m.lastText = text
	return m.readability, m.err
}

func (m *mockAnalyzerService) Syllables(_ context.Context, _ string) (int, error) {
	return 1, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Keys() []string {
	return nil
}

func (m *mockSettingsService) Path() string {
	return ":memory:"
}
