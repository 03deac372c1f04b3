package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumeiq-api/internal/analyzer"
	"github.com/yourusername/resumeiq-api/internal/config"
	"github.com/yourusername/resumeiq-api/internal/handler"
	"github.com/yourusername/resumeiq-api/internal/middleware"
)

func main() {
	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("Starting ResumeIQ API")

	// ── Reference Data ───────────────────────────────────
	ref := analyzer.DefaultReferenceData()
	if cfg.ReferenceDataPath != "" {
		ref, err = analyzer.LoadReferenceData(cfg.ReferenceDataPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ReferenceDataPath).Msg("Failed to load reference data")
		}
		log.Info().Str("path", cfg.ReferenceDataPath).Msg("Reference data loaded")
	}
	log.Info().
		Strs("industries", ref.Industries()).
		Int("actionVerbs", len(ref.ActionVerbs)).
		Msg("Analyzer ready")

	// ── Middleware ────────────────────────────────────────
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS)
	defer rateLimiter.Close()

	// ── Router ───────────────────────────────────────────
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := handler.NewRouter(cfg, analyzer.New(ref), rateLimiter)

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("ResumeIQ API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return
	}

	log.Info().Msg("Server stopped")
}
