package driven

// Stemmer reduces a lower-case word to its stem.
// Implementations return the word unchanged when it cannot be stemmed.
type Stemmer interface {
	Stem(word string) string
}
