package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/resumeiq-api/internal/analyzer"
	"github.com/yourusername/resumeiq-api/internal/config"
	"github.com/yourusername/resumeiq-api/internal/middleware"
	"github.com/yourusername/resumeiq-api/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		DefaultIndustry: analyzer.GeneralIndustry,
		MaxUploadBytes:  1 << 20,
		MaxTextChars:    30000,
		RateLimitRPS:    100,
		AllowedOrigins:  []string{"http://localhost:5173"},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	rl := middleware.NewRateLimiter(cfg.RateLimitRPS)
	t.Cleanup(rl.Close)
	return NewRouter(cfg, analyzer.New(nil), rl)
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postFile(t *testing.T, r http.Handler, filename string, content []byte, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/analyze-file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func sampleRecord() *model.ResumeRecord {
	return &model.ResumeRecord{
		PersonalInfo: &model.PersonalInfo{
			Name:    "Jane Doe",
			Email:   "jane@example.com",
			Summary: "Senior engineer with 5 years of experience.",
		},
		Experiences: []model.Experience{{
			Company:     "Acme Corp",
			Position:    "Software Engineer",
			Duration:    "2019 - 2023",
			Description: "Developed 3 projects and reduced costs by 15%. Saved $250,000 annually.",
		}},
		Education: []model.Education{{
			Institution: "State University",
			Degree:      "BS Computer Science",
			Duration:    "2015 - 2019",
		}},
		Skills: "Go, Docker, Kubernetes, SQL, team management",
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, w)["status"])

	_, err := uuid.Parse(w.Header().Get(middleware.HeaderRequestID))
	assert.NoError(t, err)
}

func TestAnalyze(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := postJSON(r, "/resume/analyze", map[string]any{
		"resumeData": sampleRecord(),
		"industry":   " Technology ",
		"targetRole": "Backend Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[model.AnalysisResponse](t, w)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "technology", resp.Industry)
	assert.Empty(t, resp.Filename)

	assert.Equal(t, 36, resp.Analysis.WordCount)
	assert.Equal(t, []string{"developed", "reduced"}, resp.Analysis.ActionVerbsUsed)
	assert.Equal(t, []string{"Docker", "Kubernetes", "SQL", "team management"}, resp.Analysis.IndustryKeywordsFound)
	assert.Equal(t, []string{"15%", "$250,000", "5 years", "3 projects"}, resp.Analysis.QuantifiableMetrics)
	assert.True(t, resp.Analysis.HasQuantifiableAchievements)

	assert.Equal(t, model.NLPMetrics{
		WordCount:        36,
		ActionVerbsCount: 2,
		KeywordsCount:    4,
		MetricsCount:     4,
		ReadabilityScore: 52,
	}, resp.NLPMetrics)

	assert.Equal(t, []string{
		"software development", "web development", "backend", "frontend",
		"full stack", "agile", "scrum", "kanban",
	}, resp.MissingKeywords)
}

func TestAnalyzeDefaultsIndustry(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := postJSON(r, "/resume/analyze", map[string]any{"resumeData": sampleRecord()})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[model.AnalysisResponse](t, w)
	assert.Equal(t, analyzer.GeneralIndustry, resp.Industry)
	assert.Equal(t, []string{"team management"}, resp.Analysis.IndustryKeywordsFound)
	assert.NotContains(t, resp.MissingKeywords, "team management")
	assert.Len(t, resp.MissingKeywords, 8)
}

func TestAnalyzeRejectsBadInput(t *testing.T) {
	r := newTestRouter(t, testConfig())

	tests := []struct {
		name    string
		body    any
		wantErr string
	}{
		{"malformed json", `{"resumeData":`, "Invalid request body"},
		{"missing resume data", map[string]any{"industry": "technology"}, "No resume data provided"},
		{"empty resume data", map[string]any{"resumeData": map[string]any{}}, "Please add some content"},
		{"blank personal info", map[string]any{"resumeData": map[string]any{"personalInfo": map[string]any{"email": "a@b.c"}}}, "Please add some content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/resume/analyze", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decode[map[string]string](t, w)["error"], tt.wantErr)
		})
	}
}

func TestAnalyzeFileText(t *testing.T) {
	r := newTestRouter(t, testConfig())

	content := "Jane Doe\nLed a team that increased revenue by 25%.\nManaged Docker and Kubernetes deployments.\n"
	w := postFile(t, r, "resume.txt", []byte(content), map[string]string{"industry": "technology"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[model.AnalysisResponse](t, w)
	assert.Equal(t, "resume.txt", resp.Filename)
	assert.Equal(t, "technology", resp.Industry)
	assert.Equal(t, []string{"25%"}, resp.Analysis.QuantifiableMetrics)
	assert.Contains(t, resp.Analysis.IndustryKeywordsFound, "Docker")
	assert.Contains(t, resp.Analysis.IndustryKeywordsFound, "Kubernetes")
	assert.Contains(t, resp.Analysis.ActionVerbsUsed, "managed")
}

func TestAnalyzeFileHTML(t *testing.T) {
	r := newTestRouter(t, testConfig())

	page := `<html><head><style>p{color:red}</style></head><body>
<h1>Jane Doe</h1><p>Designed and launched a billing platform serving 2 million users.</p>
<ul><li>Go</li><li>Postgres</li></ul></body></html>`
	w := postFile(t, r, "resume.html", []byte(page), map[string]string{"industry": "technology"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[model.AnalysisResponse](t, w)
	assert.Equal(t, []string{"2 million"}, resp.Analysis.QuantifiableMetrics)
	assert.Contains(t, resp.Analysis.IndustryKeywordsFound, "Postgres")
	assert.NotContains(t, resp.Analysis.IndustryKeywordsFound, "color")
}

func TestAnalyzeFileErrors(t *testing.T) {
	small := testConfig()
	small.MaxUploadBytes = 64

	long := []byte(strings.Repeat("Managed a team of engineers. ", 10))

	tests := []struct {
		name     string
		cfg      *config.Config
		filename string
		content  []byte
		want     int
	}{
		{"no file", testConfig(), "", nil, http.StatusBadRequest},
		{"unsupported type", testConfig(), "resume.exe", long, http.StatusUnsupportedMediaType},
		{"too large", small, "resume.txt", long, http.StatusRequestEntityTooLarge},
		{"invalid pdf", testConfig(), "resume.pdf", long, http.StatusBadRequest},
		{"empty text", testConfig(), "resume.txt", []byte("   \n "), http.StatusUnprocessableEntity},
		{"too little text", testConfig(), "resume.txt", []byte("Jane Doe"), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postFile(t, newTestRouter(t, tt.cfg), tt.filename, tt.content, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestSuggestKeywords(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := postJSON(r, "/keywords/suggest", map[string]any{
		"industry": "technology",
		"skills":   []string{"backend, Docker"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	type suggestResponse struct {
		Industry string   `json:"industry"`
		Keywords []string `json:"keywords"`
	}
	resp := decode[suggestResponse](t, w)

	assert.Equal(t, "technology", resp.Industry)
	assert.Equal(t, []string{
		"software development", "web development", "frontend", "full stack",
		"agile", "scrum", "kanban", "CI/CD", "cloud computing", "AWS", "Azure", "GCP",
	}, resp.Keywords)
}

func TestMatchKeywords(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := postJSON(r, "/keywords/match", map[string]any{
		"content":  "Experienced with Go and Docker",
		"keywords": []string{"docker", "kubernetes"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 50, decode[map[string]int](t, w)["score"])

	w = postJSON(r, "/keywords/match", map[string]any{"content": "anything"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIndustries(t *testing.T) {
	r := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/reference/industries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Industries []string `json:"industries"`
		Default    string   `json:"default"`
		Tips       []string `json:"tips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, []string{"education", "finance", "general", "healthcare", "marketing", "technology"}, resp.Industries)
	assert.Equal(t, analyzer.GeneralIndustry, resp.Default)
	assert.Len(t, resp.Tips, 10)
}

func TestRateLimitedRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 1
	r := newTestRouter(t, cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/reference/industries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// health is outside the limited group
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 10))
	assert.Equal(t, "hé", truncateRunes("héllo", 2))
	assert.Equal(t, "", truncateRunes("héllo", 0))
}
