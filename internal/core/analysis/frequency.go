package analysis

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// minCommonWordLength is the shortest token counted by MostCommonWords.
const minCommonWordLength = 3

// MostCommonWords returns the n most frequent words in text, most frequent
// first. Stop words and words shorter than three characters are ignored.
// Words with equal counts keep the order in which they first appear.
func MostCommonWords(text string, n int) ([]domain.WordFrequency, error) {
	return MostCommonWordsFunc(text, n, nil)
}

// MostCommonWordsFunc is MostCommonWords with tokens grouped by key before
// counting. Each group is reported under the first token seen for it.
// A nil key groups identical tokens only.
func MostCommonWordsFunc(text string, n int, key func(string) string) ([]domain.WordFrequency, error) {
	if n < 0 {
		return nil, fmt.Errorf("result count must not be negative, got %d: %w", n, domain.ErrInvalidArgument)
	}

	var (
		counts []domain.WordFrequency
		index  = make(map[string]int)
	)
	for _, tok := range wordTokens(text) {
		if stopWords.contains(tok) || utf8.RuneCountInString(tok) < minCommonWordLength {
			continue
		}
		k := tok
		if key != nil {
			k = key(tok)
		}
		if i, ok := index[k]; ok {
			counts[i].Count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, domain.WordFrequency{Word: tok, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n < len(counts) {
		counts = counts[:n]
	}
	if counts == nil {
		counts = []domain.WordFrequency{}
	}
	return counts, nil
}
