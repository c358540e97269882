// Package snowball adapts the Snowball English stemmer to driven.Stemmer.
package snowball

import (
	"github.com/kljensen/snowball"

	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/logger"
)

// Ensure Stemmer implements the interface.
var _ driven.Stemmer = (*Stemmer)(nil)

const language = "english"

// Stemmer reduces English words to their Snowball stem.
type Stemmer struct{}

// New creates a new Snowball stemmer.
func New() *Stemmer {
	return &Stemmer{}
}

// Stem returns the stem of word, or word itself if stemming fails.
// Stop words are stemmed too; callers filter them beforehand.
func (s *Stemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, language, true)
	if err != nil || stemmed == "" {
		logger.Debug("stem %q: %v", word, err)
		return word
	}
	return stemmed
}
