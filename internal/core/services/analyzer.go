package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/textstat/internal/core/analysis"
	"github.com/custodia-labs/textstat/internal/core/domain"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/core/ports/driving"
	"github.com/custodia-labs/textstat/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.AnalyzerService = (*AnalyzerService)(nil)

// AnalyzerService runs the text analyses with configured defaults and
// turns raw files into analysable text.
type AnalyzerService struct {
	settings driving.SettingsService
	registry driven.NormaliserRegistry
	stemmer  driven.Stemmer
}

// NewAnalyzerService creates a new analyzer service.
// All parameters are optional (can be nil): without settings the built-in
// defaults apply, without a registry files cannot be analysed, and
// without a stemmer common words are never grouped by stem.
func NewAnalyzerService(
	settings driving.SettingsService,
	registry driven.NormaliserRegistry,
	stemmer driven.Stemmer,
) *AnalyzerService {
	return &AnalyzerService{
		settings: settings,
		registry: registry,
		stemmer:  stemmer,
	}
}

// Analyze runs every analysis over text and bundles the results.
func (s *AnalyzerService) Analyze(ctx context.Context, text string, opts domain.AnalysisOptions) (*domain.Report, error) {
	logger.Section("Text Analysis")
	defer logger.Timed("analysis")()

	opts, err := s.resolve(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("Options: wpm=%d common=%d keywords=%d stem=%t",
		opts.WordsPerMinute, opts.CommonWords, opts.Keywords, opts.Stem)

	report := &domain.Report{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
	}

	report.Statistics = analysis.TextStatistics(text)
	report.Statistics.ReadingTime, err = analysis.ReadingTime(text, opts.WordsPerMinute)
	if err != nil {
		return nil, err
	}
	logger.Debug("Statistics: %d words, %d sentences, %d paragraphs",
		report.Statistics.Words, report.Statistics.Sentences, report.Statistics.Paragraphs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Readability = analysis.ReadabilityScore(text)
	report.Sentiment = analysis.SentimentAnalysis(text)
	logger.Debug("Readability: %.1f, sentiment: %s (%.2f)",
		report.Readability, report.Sentiment.Label, report.Sentiment.Score)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.CommonWords, err = s.commonWords(text, opts.CommonWords, opts.Stem)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Keywords, err = analysis.ExtractKeywords(text, opts.Keywords)
	if err != nil {
		return nil, err
	}
	logger.Debug("Found %d common words, %d keywords", len(report.CommonWords), len(report.Keywords))

	return report, nil
}

// AnalyzeDocument normalises a raw file and analyses its content.
func (s *AnalyzerService) AnalyzeDocument(
	ctx context.Context, raw *domain.RawDocument, opts domain.AnalysisOptions,
) (*domain.Report, error) {
	doc, err := s.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}

	report, err := s.Analyze(ctx, doc.Content, opts)
	if err != nil {
		return nil, err
	}
	report.Source = doc.URI
	report.Title = doc.Title
	return report, nil
}

// Normalise converts a raw file into plain text without analysing it.
func (s *AnalyzerService) Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}
	if s.registry == nil {
		return nil, fmt.Errorf("%w: no normalisers configured", domain.ErrUnsupportedType)
	}

	logger.Debug("Normalising %s (%s, %d bytes)", raw.URI, raw.MIMEType, len(raw.Content))
	doc, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}
	return doc, nil
}

// Statistics returns counts and derived metrics. The reading time uses
// the configured reading rate.
func (s *AnalyzerService) Statistics(ctx context.Context, text string) (domain.Statistics, error) {
	if err := ctx.Err(); err != nil {
		return domain.Statistics{}, err
	}

	stats := analysis.TextStatistics(text)
	wpm := s.defaults().WordsPerMinute
	if wpm != domain.DefaultWordsPerMinute {
		minutes, err := analysis.ReadingTime(text, wpm)
		if err != nil {
			return domain.Statistics{}, err
		}
		stats.ReadingTime = minutes
	}
	return stats, nil
}

// ReadingTime estimates reading time in minutes.
func (s *AnalyzerService) ReadingTime(ctx context.Context, text string, wordsPerMinute int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	wpm, err := resolveCount("words per minute", wordsPerMinute, s.defaults().WordsPerMinute)
	if err != nil {
		return 0, err
	}
	return analysis.ReadingTime(text, wpm)
}

// CommonWords returns the n most frequent non-stop words.
func (s *AnalyzerService) CommonWords(ctx context.Context, text string, n int, stem bool) ([]domain.WordFrequency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defaults := s.defaults()
	n, err := resolveCount("n", n, defaults.CommonWords)
	if err != nil {
		return nil, err
	}
	return s.commonWords(text, n, stem || defaults.Stem)
}

// Keywords returns the n highest scoring keywords.
func (s *AnalyzerService) Keywords(ctx context.Context, text string, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n, err := resolveCount("n", n, s.defaults().Keywords)
	if err != nil {
		return nil, err
	}
	return analysis.ExtractKeywords(text, n)
}

// Sentiment classifies the tone of text.
func (s *AnalyzerService) Sentiment(ctx context.Context, text string) (domain.Sentiment, error) {
	if err := ctx.Err(); err != nil {
		return domain.Sentiment{}, err
	}
	return analysis.SentimentAnalysis(text), nil
}

// Readability returns the Flesch Reading Ease score.
func (s *AnalyzerService) Readability(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return analysis.ReadabilityScore(text), nil
}

// Syllables estimates the syllable count of a single word.
func (s *AnalyzerService) Syllables(ctx context.Context, word string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return analysis.CountSyllables(word), nil
}

func (s *AnalyzerService) commonWords(text string, n int, stem bool) ([]domain.WordFrequency, error) {
	if stem && s.stemmer != nil {
		logger.Debug("Grouping common words by stem")
		return analysis.MostCommonWordsFunc(text, n, s.stemmer.Stem)
	}
	if stem {
		logger.Warn("Stemming requested but no stemmer is configured")
	}
	return analysis.MostCommonWords(text, n)
}

// resolve fills zero options from the configured defaults.
func (s *AnalyzerService) resolve(opts domain.AnalysisOptions) (domain.AnalysisOptions, error) {
	defaults := s.defaults()

	var err error
	if opts.WordsPerMinute, err = resolveCount("words per minute", opts.WordsPerMinute, defaults.WordsPerMinute); err != nil {
		return opts, err
	}
	if opts.CommonWords, err = resolveCount("common words", opts.CommonWords, defaults.CommonWords); err != nil {
		return opts, err
	}
	if opts.Keywords, err = resolveCount("keywords", opts.Keywords, defaults.Keywords); err != nil {
		return opts, err
	}
	opts.Stem = opts.Stem || defaults.Stem
	return opts, nil
}

func (s *AnalyzerService) defaults() domain.AnalysisSettings {
	fallback := domain.DefaultAppSettings().Analysis
	if s.settings == nil {
		return fallback
	}

	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Failed to read settings, using defaults: %v", err)
		return fallback
	}
	return settings.Analysis
}

// resolveCount rejects negative values and maps zero to the default.
func resolveCount(name string, n, defaultVal int) (int, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("%w: %s must not be negative, got %d", domain.ErrInvalidArgument, name, n)
	case n == 0:
		return defaultVal, nil
	default:
		return n, nil
	}
}
