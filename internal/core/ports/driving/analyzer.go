package driving

import (
	"context"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// AnalyzerService provides text analysis to external actors.
//
// Count parameters follow one rule across every method: a negative value
// is rejected with domain.ErrInvalidArgument and zero selects the
// configured default.
type AnalyzerService interface {
	// Analyze runs every analysis over text and bundles the results.
	Analyze(ctx context.Context, text string, opts domain.AnalysisOptions) (*domain.Report, error)

	// AnalyzeDocument normalises a raw file and analyses its content.
	AnalyzeDocument(ctx context.Context, raw *domain.RawDocument, opts domain.AnalysisOptions) (*domain.Report, error)

	// Normalise converts a raw file into plain text without analysing it.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*domain.Document, error)

	// Statistics returns counts and derived metrics.
	Statistics(ctx context.Context, text string) (domain.Statistics, error)

	// ReadingTime estimates reading time in minutes.
	ReadingTime(ctx context.Context, text string, wordsPerMinute int) (float64, error)

	// CommonWords returns the n most frequent non-stop words.
	CommonWords(ctx context.Context, text string, n int, stem bool) ([]domain.WordFrequency, error)

	// Keywords returns the n highest scoring keywords.
	Keywords(ctx context.Context, text string, n int) ([]string, error)

	// Sentiment classifies the tone of text.
	Sentiment(ctx context.Context, text string) (domain.Sentiment, error)

	// Readability returns the Flesch Reading Ease score.
	Readability(ctx context.Context, text string) (float64, error)

	// Syllables estimates the syllable count of a single word.
	Syllables(ctx context.Context, word string) (int, error)
}
