package analyzer

import "strings"

// matchActionVerbs keeps every token that contains a verb or is contained by one.
// Containment is checked both ways, so "scheduled" counts through "led" and a
// stray "ed" token counts through any verb ending in it.
func matchActionVerbs(tokens, verbs []string) []string {
	used := make([]string, 0)
	for _, tok := range tokens {
		for _, verb := range verbs {
			if strings.Contains(tok, verb) || strings.Contains(verb, tok) {
				used = append(used, tok)
				break
			}
		}
	}
	return used
}

// matchIndustryKeywords reports which candidate phrases occur in the corpus.
// Results keep reference casing and first-seen order, without duplicates.
func matchIndustryKeywords(corpus string, candidates []string) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{}, len(candidates))
	for _, kw := range candidates {
		if _, ok := seen[kw]; ok {
			continue
		}
		if strings.Contains(corpus, strings.ToLower(kw)) {
			seen[kw] = struct{}{}
			found = append(found, kw)
		}
	}
	return found
}
