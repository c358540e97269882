package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentenceTerminators matches one or more consecutive sentence-ending marks.
var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// paragraphSeparator is the blank line between paragraphs.
const paragraphSeparator = "\n\n"

// CountWords returns the number of whitespace-separated tokens in text.
func CountWords(text string) int {
	return len(splitWhitespace(text))
}

// CountSentences returns the number of non-blank segments left after
// splitting text on runs of '.', '!' and '?'.
// Non-empty text without terminal punctuation is one sentence.
func CountSentences(text string) int {
	return countNonBlank(sentenceTerminators.Split(text, -1))
}

// CountParagraphs returns the number of non-blank segments left after
// splitting text on "\n\n".
func CountParagraphs(text string) int {
	return countNonBlank(strings.Split(text, paragraphSeparator))
}

// CountCharacters returns the length of text in Unicode code points.
func CountCharacters(text string) int {
	return utf8.RuneCountInString(text)
}

func countNonBlank(segments []string) int {
	n := 0
	for _, s := range segments {
		if !isBlank(s) {
			n++
		}
	}
	return n
}
