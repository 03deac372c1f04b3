package analyzer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeneralIndustry is the fallback tag, merged into every industry lookup.
const GeneralIndustry = "general"

var (
	ErrNoGeneralKeywords = errors.New("reference data has no general keyword list")
	ErrNoActionVerbs     = errors.New("reference data has no action verbs")
)

// ReferenceData holds the static tables the analyzer matches against.
// Treat it as read-only once handed to New.
type ReferenceData struct {
	IndustryKeywords map[string][]string `yaml:"industry_keywords" json:"industryKeywords"`
	ActionVerbs      []string            `yaml:"action_verbs" json:"actionVerbs"`
	ATSTips          []string            `yaml:"ats_tips" json:"atsTips"`
}

// LoadReferenceData reads a YAML file with the same shape as ReferenceData.
// Tables missing from the file keep their built-in values, except that an
// industry_keywords map replaces the built-in one wholesale.
func LoadReferenceData(path string) (*ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference data: %w", err)
	}
	return ParseReferenceData(data)
}

// ParseReferenceData decodes YAML reference data and validates it.
func ParseReferenceData(data []byte) (*ReferenceData, error) {
	var ref ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("decoding reference data: %w", err)
	}

	def := DefaultReferenceData()
	if ref.IndustryKeywords == nil {
		ref.IndustryKeywords = def.IndustryKeywords
	}
	if ref.ActionVerbs == nil {
		ref.ActionVerbs = def.ActionVerbs
	}
	if ref.ATSTips == nil {
		ref.ATSTips = def.ATSTips
	}

	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return &ref, nil
}

// Validate checks the invariants every analysis depends on.
func (r *ReferenceData) Validate() error {
	if len(r.IndustryKeywords[GeneralIndustry]) == 0 {
		return ErrNoGeneralKeywords
	}
	for _, v := range r.ActionVerbs {
		if strings.TrimSpace(v) != "" {
			return nil
		}
	}
	return ErrNoActionVerbs
}

// keywordsFor returns the keyword list for an industry, falling back to general.
func (r *ReferenceData) keywordsFor(industry string) []string {
	if kw, ok := r.IndustryKeywords[industry]; ok {
		return kw
	}
	return r.IndustryKeywords[GeneralIndustry]
}

// Industries returns the known industry tags, sorted.
func (r *ReferenceData) Industries() []string {
	tags := make([]string, 0, len(r.IndustryKeywords))
	for tag := range r.IndustryKeywords {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Tips returns a copy of the ATS optimization tips.
func (r *ReferenceData) Tips() []string {
	return append(make([]string, 0, len(r.ATSTips)), r.ATSTips...)
}

// DefaultReferenceData returns a fresh copy of the built-in tables.
func DefaultReferenceData() *ReferenceData {
	kw := make(map[string][]string, len(defaultIndustryKeywords))
	for tag, list := range defaultIndustryKeywords {
		kw[tag] = append([]string(nil), list...)
	}
	return &ReferenceData{
		IndustryKeywords: kw,
		ActionVerbs:      append([]string(nil), defaultActionVerbs...),
		ATSTips:          append([]string(nil), defaultATSTips...),
	}
}

// ── Built-in tables ────────────────────────────────────

var defaultIndustryKeywords = map[string][]string{
	"technology": {
		"software development", "web development", "backend", "frontend", "full stack",
		"agile", "scrum", "kanban", "CI/CD", "cloud computing", "AWS", "Azure", "GCP",
		"Docker", "Kubernetes", "microservices", "API development", "REST", "GraphQL",
		"database design", "SQL", "Postgres", "MySQL", "NoSQL", "MongoDB",
		"version control", "Git", "testing", "unit testing", "integration testing",
		"debugging", "performance optimization", "scalability", "security", "devops",
		"infrastructure as code", "monitoring", "problem-solving", "collaboration",
		"code review", "technical documentation", "machine learning",
	},
	"marketing": {
		"digital marketing", "SEO", "SEM", "content marketing", "social media",
		"Google Analytics", "email campaigns", "A/B testing", "conversion optimization",
		"marketing automation", "CRM", "brand management", "market research",
		"campaign management", "ROI analysis", "stakeholder management",
		"content strategy", "growth marketing", "paid media",
	},
	"finance": {
		"financial analysis", "budgeting", "forecasting", "risk management", "compliance",
		"financial modeling", "Excel", "QuickBooks", "SAP", "auditing", "tax preparation",
		"accounts payable", "accounts receivable", "financial reporting", "GAAP",
		"regulatory compliance", "data analysis", "valuation",
	},
	"healthcare": {
		"patient care", "medical records", "HIPAA compliance", "EMR/EHR",
		"clinical procedures", "diagnosis", "treatment planning", "patient education",
		"medical terminology", "healthcare regulations", "quality assurance",
		"interdisciplinary collaboration", "telemedicine", "patient safety",
	},
	"education": {
		"curriculum development", "lesson planning", "classroom management",
		"student assessment", "educational technology", "differentiated instruction",
		"parent communication", "learning management systems", "student engagement",
		"educational standards", "instructional design", "assessment design",
	},
	GeneralIndustry: {
		"leadership", "team management", "project management", "communication",
		"problem-solving", "critical thinking", "time management", "adaptability",
		"collaboration", "strategic planning", "data analysis", "process improvement",
		"stakeholder management", "budget management", "presentation skills",
	},
}

var defaultActionVerbs = []string{
	"achieved", "improved", "developed", "implemented", "led", "managed",
	"created", "designed", "optimized", "increased", "reduced", "streamlined",
	"coordinated", "executed", "delivered", "launched", "established", "transformed",
	"analyzed", "resolved", "spearheaded", "orchestrated", "mentored", "automated",
}

var defaultATSTips = []string{
	"Use standard section headings (Experience, Education, Skills)",
	"Include relevant keywords from the job description",
	"Use a simple, clean format without complex tables or graphics",
	"List skills in a dedicated Skills section",
	"Include measurable achievements with numbers and percentages",
	"Use industry-standard job titles",
	"Spell out acronyms on first use",
	"Save as .docx or .pdf format",
	"Use standard fonts (Arial, Calibri, Times New Roman)",
	"Avoid headers and footers for important information",
}
