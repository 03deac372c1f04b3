package analyzer

import (
	"math"
	"regexp"
	"strings"
)

const (
	// maxSuggestedKeywords caps RelevantKeywords.
	maxSuggestedKeywords = 12
	// MissingKeywordLimit is how many missing keywords a report lists.
	MissingKeywordLimit = 8
)

var reNonAlnumSpace = regexp.MustCompile(`[^a-z0-9 ]`)

// normalizeKeyword lowercases and keeps only ASCII letters, digits and spaces.
// "CI/CD" becomes "cicd", "Node.js" becomes "nodejs".
func normalizeKeyword(s string) string {
	return strings.TrimSpace(reNonAlnumSpace.ReplaceAllString(strings.ToLower(s), ""))
}

// MissingKeywords lists industry keywords absent from found, up to limit.
// A limit <= 0 returns all of them.
func (a *Analyzer) MissingKeywords(industry string, found []string, limit int) []string {
	have := make(map[string]struct{}, len(found))
	for _, f := range found {
		have[f] = struct{}{}
	}

	missing := make([]string, 0)
	for _, kw := range a.ref.keywordsFor(industry) {
		if _, ok := have[kw]; ok {
			continue
		}
		missing = append(missing, kw)
		if limit > 0 && len(missing) >= limit {
			break
		}
	}
	return missing
}

// RelevantKeywords suggests industry keywords the candidate does not already
// list. Each skills entry may itself be comma-separated.
func (a *Analyzer) RelevantKeywords(industry string, skills []string) []string {
	var current []string
	for _, s := range skills {
		for _, part := range strings.Split(s, ",") {
			if n := normalizeKeyword(part); n != "" {
				current = append(current, n)
			}
		}
	}

	results := make([]string, 0, maxSuggestedKeywords)
	for _, kw := range a.ref.keywordsFor(industry) {
		nk := normalizeKeyword(kw)
		present := false
		for _, cs := range current {
			if strings.Contains(cs, nk) || strings.Contains(nk, cs) {
				present = true
				break
			}
		}
		if !present {
			results = append(results, kw)
		}
		if len(results) >= maxSuggestedKeywords {
			break
		}
	}
	return results
}

// KeywordMatch returns the rounded percentage of targets found in content.
// A target matches when a content token equals, contains or is contained by
// it, or when the whole normalized target appears in the normalized content.
func KeywordMatch(content string, targets []string) int {
	if len(targets) == 0 {
		return 0
	}

	contentNorm := normalizeKeyword(content)
	tokens := strings.Fields(contentNorm)

	matched := 0
	for _, t := range targets {
		k := normalizeKeyword(t)
		if k == "" {
			continue
		}
		if strings.Contains(contentNorm, k) {
			matched++
			continue
		}
		for _, tok := range tokens {
			if strings.Contains(tok, k) || strings.Contains(k, tok) {
				matched++
				break
			}
		}
	}
	return int(math.Round(float64(matched) / float64(len(targets)) * 100))
}
