package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Logging
	LogLevel string

	// Analyzer
	ReferenceDataPath string // optional YAML override of the keyword/verb tables
	DefaultIndustry   string

	// Uploads
	MaxUploadBytes int64
	MaxTextChars   int

	// Rate Limiting
	RateLimitRPS int

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (development only).
	// godotenv never overwrites variables that are already set.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ReferenceDataPath: getEnv("REFERENCE_DATA_PATH", ""),
		DefaultIndustry:   getEnv("DEFAULT_INDUSTRY", "general"),
		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)),
		MaxTextChars:      getEnvInt("MAX_TEXT_CHARS", 30000),
		RateLimitRPS:      getEnvInt("RATE_LIMIT_RPS", 10),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"https://resumeiq.app",
		}),
	}

	if cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be positive, got %d", cfg.RateLimitRPS)
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxTextChars <= 0 {
		return nil, fmt.Errorf("MAX_TEXT_CHARS must be positive, got %d", cfg.MaxTextChars)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

// getEnvList reads a comma-separated list, ignoring blank entries
func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
