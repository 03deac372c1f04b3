package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/resumeiq-api/internal/analyzer"
	"github.com/yourusername/resumeiq-api/internal/config"
	"github.com/yourusername/resumeiq-api/internal/middleware"
)

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(cfg *config.Config, a *analyzer.Analyzer, rateLimiter *middleware.RateLimiter) *gin.Engine {
	resumeHandler := NewResumeHandler(a, cfg)
	keywordHandler := NewKeywordHandler(a, cfg.DefaultIndustry)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Multipart bodies above this spill to disk
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "resumeiq-api",
			"time":    time.Now().UTC(),
		})
	})

	api := r.Group("/", rateLimiter.Limit())
	{
		// Reference data
		api.GET("/reference/industries", keywordHandler.Industries)

		// Resume analysis
		api.POST("/resume/analyze", resumeHandler.Analyze)
		api.POST("/resume/analyze-file", resumeHandler.AnalyzeFile)

		// Keywords
		api.POST("/keywords/suggest", keywordHandler.Suggest)
		api.POST("/keywords/match", keywordHandler.Match)
	}

	return r
}
