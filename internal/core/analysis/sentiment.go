package analysis

import (
	"strings"

	"github.com/custodia-labs/textstat/internal/core/domain"
)

// sentimentThreshold is the score magnitude above which text is
// classified as positive or negative.
const sentimentThreshold = 0.2

// SentimentAnalysis classifies text by counting whitespace tokens that
// exactly match the positive and negative lexicons. Punctuation is not
// stripped, so "great!" does not match "great".
func SentimentAnalysis(text string) domain.Sentiment {
	var pos, neg int
	for _, tok := range splitWhitespace(strings.ToLower(text)) {
		switch {
		case positiveWords.contains(tok):
			pos++
		case negativeWords.contains(tok):
			neg++
		}
	}

	if pos+neg == 0 {
		return domain.Sentiment{Label: domain.SentimentNeutral}
	}

	score := float64(pos-neg) / float64(pos+neg)

	label := domain.SentimentNeutral
	switch {
	case score > sentimentThreshold:
		label = domain.SentimentPositive
	case score < -sentimentThreshold:
		label = domain.SentimentNegative
	}

	return domain.Sentiment{
		Label:    label,
		Score:    round(score, 2),
		Positive: pos,
		Negative: neg,
	}
}
