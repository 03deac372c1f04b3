package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/resumeiq-api/internal/analyzer"
)

type KeywordHandler struct {
	analyzer        *analyzer.Analyzer
	defaultIndustry string
}

func NewKeywordHandler(a *analyzer.Analyzer, defaultIndustry string) *KeywordHandler {
	return &KeywordHandler{analyzer: a, defaultIndustry: defaultIndustry}
}

// Suggest handles POST /keywords/suggest
// Returns industry keywords the candidate's skills do not cover yet
func (h *KeywordHandler) Suggest(c *gin.Context) {
	var req struct {
		Industry string   `json:"industry"`
		Skills   []string `json:"skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	industry := strings.ToLower(strings.TrimSpace(req.Industry))
	if industry == "" {
		industry = h.defaultIndustry
	}

	c.JSON(http.StatusOK, gin.H{
		"industry": industry,
		"keywords": h.analyzer.RelevantKeywords(industry, req.Skills),
	})
}

// Match handles POST /keywords/match
// Scores how many of the target keywords appear in the content
func (h *KeywordHandler) Match(c *gin.Context) {
	var req struct {
		Content  string   `json:"content"`
		Keywords []string `json:"keywords" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "keywords is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"score": analyzer.KeywordMatch(req.Content, req.Keywords)})
}

// Industries handles GET /reference/industries
func (h *KeywordHandler) Industries(c *gin.Context) {
	ref := h.analyzer.Reference()
	c.JSON(http.StatusOK, gin.H{
		"industries": ref.Industries(),
		"default":    h.defaultIndustry,
		"tips":       ref.Tips(),
	})
}
