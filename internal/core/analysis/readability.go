package analysis

import (
	"math"
	"strings"
)

// Flesch Reading Ease coefficients.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
	minReadability       = 0.0
	maxReadability       = 100.0
	vowels               = "aeiouy"
	silentE              = "e"
	minSyllablesPerToken = 1
)

// ReadabilityScore returns the Flesch Reading Ease score of text, clamped
// to [0, 100] and rounded to one decimal. Text without words or sentences
// scores 0.
//
// Syllables are summed over whitespace tokens with punctuation attached,
// which is intentionally different from the word-boundary tokenizer.
func ReadabilityScore(text string) float64 {
	words := CountWords(text)
	sentences := CountSentences(text)
	if words == 0 || sentences == 0 {
		return 0
	}

	syllables := 0
	for _, tok := range splitWhitespace(text) {
		syllables += CountSyllables(tok)
	}

	score := fleschBase -
		fleschSentenceWeight*(float64(words)/float64(sentences)) -
		fleschSyllableWeight*(float64(syllables)/float64(words))

	return round(math.Max(minReadability, math.Min(maxReadability, score)), 1)
}

// CountSyllables estimates the syllables in word by counting the runs of
// vowels (a, e, i, o, u, y), less one when the word ends in "e". The
// result is never below 1. This is a heuristic, not a phonetic count:
// "cake" is 1 but so is "the".
func CountSyllables(word string) int {
	word = strings.ToLower(word)

	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}

	if strings.HasSuffix(word, silentE) {
		count--
	}

	return max(minSyllablesPerToken, count)
}

// ReadabilityLevel names the Flesch Reading Ease band score falls in,
// from "very easy" (90 and above) to "very difficult" (below 30).
func ReadabilityLevel(score float64) string {
	switch {
	case score >= 90:
		return "very easy"
	case score >= 80:
		return "easy"
	case score >= 70:
		return "fairly easy"
	case score >= 60:
		return "standard"
	case score >= 50:
		return "fairly difficult"
	case score >= 30:
		return "difficult"
	default:
		return "very difficult"
	}
}
