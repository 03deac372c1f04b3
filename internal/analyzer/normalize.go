package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reNonWord          = regexp.MustCompile(`[^\w\s]`)
	reSentenceBoundary = regexp.MustCompile(`[.!?]+`)
)

// words strips punctuation and splits on whitespace.
// text is expected to be lowercased already.
func words(text string) []string {
	return strings.Fields(reNonWord.ReplaceAllString(text, " "))
}

// sentences splits on runs of terminal punctuation, trimming and dropping blanks.
func sentences(text string) []string {
	parts := reSentenceBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimFunc(p, isTrimmable); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// isTrimmable is Unicode whitespace plus the byte order mark, minus NEL.
func isTrimmable(r rune) bool {
	return r == '\ufeff' || (unicode.IsSpace(r) && r != '\u0085')
}
