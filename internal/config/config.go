package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer auth on /api routes.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Per-request analysis deadline
	AnalyzeTimeout time.Duration

	// URL fetching
	FetchTimeout       time.Duration
	FetchUserAgent     string
	FetchMaxBytes      int64
	FetchRatePerSec    float64
	FetchBurst         int
	FetchRespectRobots bool

	// PDF
	PDFFallbackPdftotext bool

	// Rolling latency window for /api/stats
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("PAPERSECT_API_KEY"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		AnalyzeTimeout: envDuration("ANALYZE_TIMEOUT", 60*time.Second),

		FetchTimeout:       envDuration("FETCH_TIMEOUT", 30*time.Second),
		FetchUserAgent:     envOr("FETCH_USER_AGENT", "papersect/1.0"),
		FetchMaxBytes:      envInt64("FETCH_MAX_BYTES", 52428800),
		FetchRatePerSec:    envFloat("FETCH_RATE_PER_SEC", 1),
		FetchBurst:         envInt("FETCH_BURST", 2),
		FetchRespectRobots: envBool("FETCH_RESPECT_ROBOTS", true),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		StatsWindow: envDuration("STATS_WINDOW", 1*time.Hour),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.AnalyzeTimeout <= 0 {
		cfg.AnalyzeTimeout = 60 * time.Second
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.FetchMaxBytes <= 0 {
		cfg.FetchMaxBytes = 52428800
	}
	if cfg.FetchBurst <= 0 {
		cfg.FetchBurst = 2
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = 1 * time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.FetchRatePerSec <= 0 {
		return fmt.Errorf("FETCH_RATE_PER_SEC must be positive, got %v", c.FetchRatePerSec)
	}
	if c.FetchUserAgent == "" {
		return fmt.Errorf("FETCH_USER_AGENT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
