package model

import "strings"

// ── Resume record (input) ──────────────────────────────

type PersonalInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	Summary  string `json:"summary" yaml:"summary"`
}

type Experience struct {
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Degree      string `json:"degree" yaml:"degree"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// ResumeRecord is the form data a user builds a resume from.
// Every field is optional.
type ResumeRecord struct {
	PersonalInfo *PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Experiences  []Experience  `json:"experiences" yaml:"experiences"`
	Education    []Education   `json:"education" yaml:"education"`
	Skills       string        `json:"skills" yaml:"skills"`
}

// HasContent reports whether the record carries anything worth analyzing:
// a name, a summary, at least one experience or education entry, or skills.
func (r *ResumeRecord) HasContent() bool {
	if r == nil {
		return false
	}
	if r.PersonalInfo != nil && (r.PersonalInfo.Name != "" || r.PersonalInfo.Summary != "") {
		return true
	}
	return len(r.Experiences) > 0 || len(r.Education) > 0 || r.Skills != ""
}

// SkillList splits the comma-separated skills string, dropping blanks.
func (r *ResumeRecord) SkillList() []string {
	if r == nil || r.Skills == "" {
		return []string{}
	}
	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// ── Analysis result (output) ───────────────────────────

// AnalysisResult is the heuristic quality snapshot of one resume.
type AnalysisResult struct {
	WordCount                   int      `json:"wordCount"`
	SentenceCount               int      `json:"sentenceCount"`
	ActionVerbsUsed             []string `json:"actionVerbsUsed"`
	ActionVerbsPercentage       float64  `json:"actionVerbsPercentage"`
	IndustryKeywordsFound       []string `json:"industryKeywordsFound"`
	KeywordDensity              float64  `json:"keywordDensity"`
	QuantifiableMetrics         []string `json:"quantifiableMetrics"`
	HasQuantifiableAchievements bool     `json:"hasQuantifiableAchievements"`
	ReadabilityScore            float64  `json:"readabilityScore"`
	AverageWordsPerSentence     float64  `json:"averageWordsPerSentence"`
}

// NLPMetrics is the compact view of an AnalysisResult that UI badges render
type NLPMetrics struct {
	WordCount        int `json:"wordCount"`
	ActionVerbsCount int `json:"actionVerbsCount"`
	KeywordsCount    int `json:"keywordsCount"`
	MetricsCount     int `json:"metricsCount"`
	ReadabilityScore int `json:"readabilityScore"`
}

// AnalysisResponse is what the analyze endpoints return
type AnalysisResponse struct {
	ID              string         `json:"id"`
	Industry        string         `json:"industry"`
	Filename        string         `json:"filename,omitempty"`
	Analysis        AnalysisResult `json:"analysis"`
	NLPMetrics      NLPMetrics     `json:"nlpMetrics"`
	MissingKeywords []string       `json:"missingKeywords"`
}
