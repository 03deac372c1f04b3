package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/resumeiq-api/internal/analyzer"
	"github.com/yourusername/resumeiq-api/internal/config"
	"github.com/yourusername/resumeiq-api/internal/extract"
	"github.com/yourusername/resumeiq-api/internal/middleware"
	"github.com/yourusername/resumeiq-api/internal/model"
)

// minExtractedChars below this an upload is probably a scanned image
const minExtractedChars = 50

type ResumeHandler struct {
	analyzer        *analyzer.Analyzer
	defaultIndustry string
	maxUploadBytes  int64
	maxTextChars    int
}

func NewResumeHandler(a *analyzer.Analyzer, cfg *config.Config) *ResumeHandler {
	return &ResumeHandler{
		analyzer:        a,
		defaultIndustry: cfg.DefaultIndustry,
		maxUploadBytes:  cfg.MaxUploadBytes,
		maxTextChars:    cfg.MaxTextChars,
	}
}

// Analyze handles POST /resume/analyze
// Scores the resume form data with the heuristic analyzer
func (h *ResumeHandler) Analyze(c *gin.Context) {
	var req struct {
		ResumeData *model.ResumeRecord `json:"resumeData"`
		Industry   string              `json:"industry"`
		TargetRole string              `json:"targetRole"`
		Seniority  string              `json:"seniority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.ResumeData == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No resume data provided. Please fill out your resume form."})
		return
	}
	if !req.ResumeData.HasContent() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please add some content to your resume before analyzing."})
		return
	}

	industry := h.industry(req.Industry)

	log.Info().
		Str("requestId", middleware.GetRequestID(c)).
		Str("industry", industry).
		Str("targetRole", req.TargetRole).
		Str("seniority", req.Seniority).
		Int("experiences", len(req.ResumeData.Experiences)).
		Msg("Running resume analysis")

	result := h.analyzer.Analyze(req.ResumeData, industry)

	c.JSON(http.StatusOK, h.response(industry, "", result))
}

// AnalyzeFile handles POST /resume/analyze-file
// Accepts a PDF, DOCX, HTML or text file via multipart form, extracts text, scores it
func (h *ResumeHandler) AnalyzeFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	kind, err := extract.KindFromFilename(header.Filename)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only PDF, DOCX, HTML and text files are supported"})
		return
	}

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	// Read file into memory, never past the limit
	fileBytes, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	if int64(len(fileBytes)) > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}

	text, err := extract.Text(kind, fileBytes)
	switch {
	case errors.Is(err, extract.ErrInvalidPDF):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF file"})
		return
	case err != nil:
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to extract text from upload")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Could not extract text from this file. It may be image-based or corrupted.",
		})
		return
	}

	if len(text) < minExtractedChars {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Very little text was extracted. This file may be image-based (scanned). Try a text-based file.",
		})
		return
	}
	text = truncateRunes(text, h.maxTextChars)

	industry := h.industry(c.PostForm("industry"))

	log.Info().
		Str("requestId", middleware.GetRequestID(c)).
		Str("filename", header.Filename).
		Str("kind", string(kind)).
		Int("bytes", len(fileBytes)).
		Int("textLen", len(text)).
		Msg("Resume file text extracted")

	result := h.analyzer.AnalyzeText(text, industry)

	c.JSON(http.StatusOK, h.response(industry, header.Filename, result))
}

// ── Helpers ──────────────────────────────────────────

func (h *ResumeHandler) industry(raw string) string {
	if tag := strings.ToLower(strings.TrimSpace(raw)); tag != "" {
		return tag
	}
	return h.defaultIndustry
}

func (h *ResumeHandler) response(industry, filename string, result model.AnalysisResult) model.AnalysisResponse {
	return model.AnalysisResponse{
		ID:              uuid.NewString(),
		Industry:        industry,
		Filename:        filename,
		Analysis:        result,
		NLPMetrics:      analyzer.Summarize(result),
		MissingKeywords: h.analyzer.MissingKeywords(industry, result.IndustryKeywordsFound, analyzer.MissingKeywordLimit),
	}
}

// truncateRunes cuts s to at most max runes
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
