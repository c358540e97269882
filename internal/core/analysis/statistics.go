package analysis

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// ReadingTime estimates how many minutes it takes to read text at
// wordsPerMinute, rounded to one decimal.
func ReadingTime(text string, wordsPerMinute int) (float64, error) {
	if wordsPerMinute <= 0 {
		return 0, fmt.Errorf("words per minute must be positive, got %d: %w",
			wordsPerMinute, domain.ErrInvalidArgument)
	}
	return readingTime(CountWords(text), wordsPerMinute), nil
}

func readingTime(words, wordsPerMinute int) float64 {
	return round(float64(words)/float64(wordsPerMinute), 1)
}

// TextStatistics computes all counts and derived metrics for text.
// Reading time uses the default rate of 200 words per minute.
func TextStatistics(text string) domain.Statistics {
	words := splitWhitespace(text)
	chars := CountCharacters(text)

	return domain.Statistics{
		Characters:         chars,
		CharactersNoSpaces: chars - strings.Count(text, " "),
		Words:              len(words),
		Sentences:          CountSentences(text),
		Paragraphs:         CountParagraphs(text),
		AvgWordLength:      averageLength(words),
		ReadingTime:        readingTime(len(words), domain.DefaultWordsPerMinute),
	}
}

// averageLength returns the mean code-point length of tokens, one decimal.
func averageLength(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	total := 0
	for _, tok := range tokens {
		total += utf8.RuneCountInString(tok)
	}
	return round(float64(total)/float64(len(tokens)), 1)
}
