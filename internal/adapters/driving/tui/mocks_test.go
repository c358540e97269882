package tui

import (
	"context"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// mockAnalyzerService implements driving.AnalyzerService for testing.
// Analyze defers to AnalyzeFunc when set.
type mockAnalyzerService struct {
	AnalyzeFunc func(ctx context.Context, text string, opts domain.AnalysisOptions) (*domain.Report, error)
	calls       []string
}

func (m *mockAnalyzerService) Analyze(
	ctx context.Context, text string, opts domain.AnalysisOptions,
) (*domain.Report, error) {
	m.calls = append(m.calls, text)
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, text, opts)
	}
	return &domain.Report{}, nil
}

func (m *mockAnalyzerService) AnalyzeDocument(
	ctx context.Context, raw *domain.RawDocument, opts domain.AnalysisOptions,
) (*domain.Report, error) {
	return m.Analyze(ctx, string(raw.Content), opts)
}

func (m *mockAnalyzerService) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	return &domain.Document{URI: raw.URI, Content: string(raw.Content)}, nil
}

func (m *mockAnalyzerService) Statistics(_ context.Context, _ string) (domain.Statistics, error) {
	return domain.Statistics{}, nil
}

func (m *mockAnalyzerService) ReadingTime(_ context.Context, _ string, _ int) (float64, error) {
	return 0, nil
}

func (m *mockAnalyzerService) CommonWords(_ context.Context, _ string, _ int, _ bool) ([]domain.WordFrequency, error) {
	return nil, nil
}

func (m *mockAnalyzerService) Keywords(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, nil
}

func (m *mockAnalyzerService) Sentiment(_ context.Context, _ string) (domain.Sentiment, error) {
	return domain.Sentiment{Label: domain.SentimentNeutral}, nil
}

func (m *mockAnalyzerService) Readability(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func (m *mockAnalyzerService) Syllables(_ context.Context, _ string) (int, error) {
	return 1, nil
}
