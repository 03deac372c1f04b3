// Package analyzer scores resume text with deterministic heuristics:
// action verbs, industry keywords, quantified achievements and readability.
// It performs no I/O and keeps no state between calls.
package analyzer

import (
	"math"
	"strings"

	"github.com/yourusername/resumeiq-api/internal/model"
)

// Analyzer is safe for concurrent use.
type Analyzer struct {
	ref   *ReferenceData
	verbs []string
}

// New builds an Analyzer over ref. A nil ref uses the built-in tables.
func New(ref *ReferenceData) *Analyzer {
	if ref == nil {
		ref = DefaultReferenceData()
	}

	verbs := make([]string, 0, len(ref.ActionVerbs))
	for _, v := range ref.ActionVerbs {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			verbs = append(verbs, v)
		}
	}

	return &Analyzer{ref: ref, verbs: verbs}
}

// Reference exposes the tables this Analyzer was built with.
func (a *Analyzer) Reference() *ReferenceData {
	return a.ref
}

// Analyze scores a resume record for the given industry.
// Unknown industries fall back to the general keyword list.
func (a *Analyzer) Analyze(rec *model.ResumeRecord, industry string) model.AnalysisResult {
	return a.AnalyzeText(buildCorpus(rec), industry)
}

// AnalyzeText scores free text, such as an uploaded resume, as one corpus.
func (a *Analyzer) AnalyzeText(text, industry string) model.AnalysisResult {
	corpus := strings.ToLower(text)

	tokens := words(corpus)
	sents := sentences(corpus)
	verbs := matchActionVerbs(tokens, a.verbs)
	keywords := matchIndustryKeywords(corpus, a.candidateKeywords(industry))
	metrics := findQuantifiableMetrics(corpus)

	res := model.AnalysisResult{
		WordCount:                   len(tokens),
		SentenceCount:               len(sents),
		ActionVerbsUsed:             verbs,
		IndustryKeywordsFound:       keywords,
		QuantifiableMetrics:         metrics,
		HasQuantifiableAchievements: len(metrics) > 0,
		ReadabilityScore:            readability(tokens, sents),
	}
	if len(tokens) > 0 {
		res.ActionVerbsPercentage = percent(len(verbs), len(tokens))
		res.KeywordDensity = percent(len(keywords), len(tokens))
	}
	if len(sents) > 0 {
		res.AverageWordsPerSentence = float64(len(tokens)) / float64(len(sents))
	}
	return res
}

// candidateKeywords is the industry list followed by the general list.
func (a *Analyzer) candidateKeywords(industry string) []string {
	industryKW := a.ref.keywordsFor(industry)
	generalKW := a.ref.IndustryKeywords[GeneralIndustry]

	all := make([]string, 0, len(industryKW)+len(generalKW))
	all = append(all, industryKW...)
	return append(all, generalKW...)
}

// buildCorpus joins the free-text fields of a record in a fixed order.
// Each field is prefixed with a space so adjacent fields never fuse.
func buildCorpus(rec *model.ResumeRecord) string {
	if rec == nil {
		return ""
	}

	var sb strings.Builder
	add := func(s string) {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}

	if p := rec.PersonalInfo; p != nil {
		add(p.Name)
		add(p.Summary)
	}
	for _, exp := range rec.Experiences {
		add(exp.Company)
		add(exp.Position)
		add(exp.Description)
	}
	for _, edu := range rec.Education {
		add(edu.Institution)
		add(edu.Degree)
		add(edu.Description)
	}
	if rec.Skills != "" {
		add(rec.Skills)
	}
	return sb.String()
}

// Summarize condenses a result into the counts the UI shows as badges.
func Summarize(res model.AnalysisResult) model.NLPMetrics {
	return model.NLPMetrics{
		WordCount:        res.WordCount,
		ActionVerbsCount: len(res.ActionVerbsUsed),
		KeywordsCount:    len(res.IndustryKeywordsFound),
		MetricsCount:     len(res.QuantifiableMetrics),
		ReadabilityScore: int(math.Round(res.ReadabilityScore)),
	}
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
