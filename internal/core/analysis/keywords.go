package analysis

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// minKeywordLength is the shortest token considered a keyword.
const minKeywordLength = 4

type scoredWord struct {
	word  string
	score float64
}

// ExtractKeywords returns up to n keywords from text, best first.
//
// Each distinct word of four or more characters scores
// frequency * (1 + length/10). Equal scores are ordered alphabetically.
// Stop words are not filtered.
func ExtractKeywords(text string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("result count must not be negative, got %d: %w", n, domain.ErrInvalidArgument)
	}

	freq := make(map[string]int)
	for _, tok := range wordTokens(text) {
		freq[tok]++
	}

	scored := make([]scoredWord, 0, len(freq))
	for word, count := range freq {
		length := utf8.RuneCountInString(word)
		if length < minKeywordLength {
			continue
		}
		scored = append(scored, scoredWord{
			word:  word,
			score: float64(count) * (1 + float64(length)/10),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].word < scored[j].word
	})

	if n < len(scored) {
		scored = scored[:n]
	}

	keywords := make([]string, len(scored))
	for i, s := range scored {
		keywords[i] = s.word
	}
	return keywords, nil
}
