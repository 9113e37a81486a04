package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PAPERSECT_API_KEY", "ANALYZE_TIMEOUT", "FETCH_RATE_PER_SEC", "FETCH_RESPECT_ROBOTS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != "8090" {
		t.Fatalf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.APIKey)
	}
	if cfg.AnalyzeTimeout != 60*time.Second {
		t.Fatalf("expected 60s analyze timeout, got %v", cfg.AnalyzeTimeout)
	}
	if !cfg.FetchRespectRobots {
		t.Fatal("expected robots.txt to be respected by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PAPERSECT_API_KEY", "secret")
	t.Setenv("ANALYZE_TIMEOUT", "5s")
	t.Setenv("FETCH_RATE_PER_SEC", "2.5")
	t.Setenv("FETCH_RESPECT_ROBOTS", "false")
	t.Setenv("MAX_UPLOAD_BYTES", "-1")

	cfg := Load()
	if cfg.Port != "9000" || cfg.APIKey != "secret" {
		t.Fatalf("unexpected port/key: %q %q", cfg.Port, cfg.APIKey)
	}
	if cfg.AnalyzeTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.AnalyzeTimeout)
	}
	if cfg.FetchRatePerSec != 2.5 {
		t.Fatalf("expected 2.5, got %v", cfg.FetchRatePerSec)
	}
	if cfg.FetchRespectRobots {
		t.Fatal("expected robots.txt disabled")
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Fatalf("non-positive upload limit should reset to default, got %d", cfg.MaxUploadBytes)
	}
}

func TestValidateRejectsBadRate(t *testing.T) {
	t.Setenv("FETCH_RATE_PER_SEC", "0")
	if err := Load().Validate(); err == nil {
		t.Fatal("expected error for zero fetch rate")
	}
}
