package domain

import "time"

// Statistics holds the counts and derived metrics for a block of text.
type Statistics struct {
	// Characters is the length of the text in Unicode code points.
	Characters int `json:"characters" yaml:"characters"`

	// CharactersNoSpaces is Characters minus the ASCII space characters.
	// Tabs, newlines and other whitespace are still counted.
	CharactersNoSpaces int `json:"characters_no_spaces" yaml:"characters_no_spaces"`

	// Words is the number of whitespace-separated tokens.
	Words int `json:"words" yaml:"words"`

	// Sentences is the number of non-blank segments between runs of . ! ?
	Sentences int `json:"sentences" yaml:"sentences"`

	// Paragraphs is the number of non-blank segments between blank lines.
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`

	// AvgWordLength is the mean token length in code points, one decimal.
	AvgWordLength float64 `json:"avg_word_length" yaml:"avg_word_length"`

	// ReadingTime is the estimated reading time in minutes, one decimal.
	ReadingTime float64 `json:"reading_time" yaml:"reading_time"`
}

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// SentimentLabel classifies the overall tone of a text.
type SentimentLabel string

// Sentiment labels.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// String returns the string representation.
func (l SentimentLabel) String() string {
	return string(l)
}

// Sentiment is the result of lexicon-based sentiment analysis.
type Sentiment struct {
	// Label is the classification derived from Score.
	Label SentimentLabel `json:"sentiment" yaml:"sentiment"`

	// Score is (positive-negative)/(positive+negative), two decimals.
	Score float64 `json:"score" yaml:"score"`

	// Positive is the number of positive lexicon hits.
	Positive int `json:"positive" yaml:"positive"`

	// Negative is the number of negative lexicon hits.
	Negative int `json:"negative" yaml:"negative"`
}

// Report bundles every analysis of a single text.
type Report struct {
	// ID uniquely identifies this report.
	ID string `json:"id" yaml:"id"`

	// Source names where the text came from: a file path, "stdin" or "args".
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Title is the document title when the text came from a file.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	Statistics  Statistics      `json:"statistics" yaml:"statistics"`
	Readability float64         `json:"readability" yaml:"readability"`
	Sentiment   Sentiment       `json:"sentiment" yaml:"sentiment"`
	CommonWords []WordFrequency `json:"common_words" yaml:"common_words"`
	Keywords    []string        `json:"keywords" yaml:"keywords"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// AnalysisOptions tunes the parameterised analyses.
// Zero values mean "use the configured default".
type AnalysisOptions struct {
	// WordsPerMinute is the reading rate for ReadingTime.
	WordsPerMinute int

	// CommonWords is how many most-common words to return.
	CommonWords int

	// Keywords is how many keywords to return.
	Keywords int

	// Stem groups common words by their Snowball stem.
	Stem bool
}
