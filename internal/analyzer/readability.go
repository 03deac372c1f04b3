package analyzer

import "regexp"

var (
	reSilentSuffix = regexp.MustCompile(`(?:[^laeiouy]es|ed|[^laeiouy]e)$`)
	reLeadingY     = regexp.MustCompile(`^y`)
	reVowelRun     = regexp.MustCompile(`[aeiouy]{1,2}`)
)

// Flesch reading-ease coefficients.
const (
	fleschBase          = 206.835
	fleschSentenceScale = 1.015
	fleschSyllableScale = 84.6
)

// countSyllables estimates syllables in a lowercase word.
func countSyllables(word string) int {
	if len(word) <= 3 {
		return 1
	}
	word = reSilentSuffix.ReplaceAllString(word, "")
	word = reLeadingY.ReplaceAllString(word, "")

	if n := len(reVowelRun.FindAllStringIndex(word, -1)); n > 0 {
		return n
	}
	return 1
}

// readability approximates Flesch reading ease, clamped to [0, 100].
func readability(tokens, sents []string) float64 {
	if len(sents) == 0 || len(tokens) == 0 {
		return 0
	}

	syllables := 0
	for _, w := range tokens {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(tokens)) / float64(len(sents))
	syllablesPerWord := float64(syllables) / float64(len(tokens))

	score := fleschBase - fleschSentenceScale*wordsPerSentence - fleschSyllableScale*syllablesPerWord
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
