package analysis

import "sort"

// Lexicon names accepted by Lexicon.
const (
	LexiconStopWords = "stopwords"
	LexiconPositive  = "positive"
	LexiconNegative  = "negative"
)

// wordSet is an immutable set of lower-case words.
type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) contains(w string) bool {
	_, ok := s[w]
	return ok
}

func (s wordSet) sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// stopWords are excluded from most-common-word counts.
var stopWords = newWordSet(
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "be",
	"been", "have", "has", "had", "do", "does", "did", "will", "would",
	"could", "should", "may", "might", "can", "this", "that", "these", "those",
)

var positiveWords = newWordSet(
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "happy", "joy", "beautiful", "perfect", "best", "awesome",
)

var negativeWords = newWordSet(
	"bad", "terrible", "awful", "horrible", "hate", "sad", "angry",
	"worst", "poor", "disappointing", "negative", "ugly", "disgusting",
)

// IsStopWord reports whether word (lower-case) is a stop word.
func IsStopWord(word string) bool {
	return stopWords.contains(word)
}

// Lexicon returns a sorted copy of the named word list. ok is false for
// an unknown name.
func Lexicon(name string) (words []string, ok bool) {
	switch name {
	case LexiconStopWords:
		return stopWords.sorted(), true
	case LexiconPositive:
		return positiveWords.sorted(), true
	case LexiconNegative:
		return negativeWords.sorted(), true
	default:
		return nil, false
	}
}
