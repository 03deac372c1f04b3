package analyzer

import "regexp"

// spaceClass widens RE2's ASCII-only \s to the Unicode space separators,
// vertical tab and BOM that extracted PDF and DOCX text carries.
const spaceClass = `[\s\v\x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}]`

var (
	rePercentage = regexp.MustCompile(`\d+%`)
	reCurrency   = regexp.MustCompile(`\$[\d,]+`)
	reScaled     = regexp.MustCompile(`(?i)\d+\+?` + spaceClass + `*(?:million|thousand|billion|k|team|users|customers|projects|years|months)`)
)

// quantifiablePatterns run in this order; the order is part of the output contract.
var quantifiablePatterns = []*regexp.Regexp{rePercentage, reCurrency, reScaled}

// findQuantifiableMetrics collects every numeric-achievement match.
// Repeats are kept since each occurrence is a separate claim.
func findQuantifiableMetrics(corpus string) []string {
	metrics := make([]string, 0)
	for _, re := range quantifiablePatterns {
		metrics = append(metrics, re.FindAllString(corpus, -1)...)
	}
	return metrics
}
