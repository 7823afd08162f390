package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !strings.HasSuffix(cfg.LexiconPath, filepath.Join(".gonc", "lexicon.db")) {
		t.Errorf("LexiconPath = %q", cfg.LexiconPath)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.MaxUploadBytes)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GONC_ADDR", ":9090")
	t.Setenv("GONC_LEXICON", "/tmp/lex.db")
	t.Setenv("GONC_STRICT", "true")
	t.Setenv("GONC_MAX_UPLOAD_BYTES", "1024")
	t.Setenv("GONC_RATE_LIMIT", "2.5")
	t.Setenv("GONC_RATE_BURST", "3")
	t.Setenv("GONC_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SENTRY_DSN", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr != ":9090" || cfg.LexiconPath != "/tmp/lex.db" || !cfg.Strict {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.MaxUploadBytes != 1024 || cfg.RateLimit != 2.5 || cfg.RateBurst != 3 {
		t.Errorf("limits = %d %g %d", cfg.MaxUploadBytes, cfg.RateLimit, cfg.RateBurst)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %q", cfg.CORSOrigins)
	}
	if cfg.SentryDSN != "" {
		t.Errorf("SentryDSN = %q", cfg.SentryDSN)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("GONC_TEST_ENV_MARKER=1\nGONC_ENV=staging\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("GONC_TEST_ENV_MARKER")
		os.Unsetenv("GONC_ENV")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Environment != "staging" {
		t.Errorf("Environment = %q, want staging", cfg.Environment)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"strict", "GONC_STRICT", "maybe"},
		{"upload", "GONC_MAX_UPLOAD_BYTES", "ten"},
		{"upload zero", "GONC_MAX_UPLOAD_BYTES", "0"},
		{"rate", "GONC_RATE_LIMIT", "fast"},
		{"rate negative", "GONC_RATE_LIMIT", "-1"},
		{"burst", "GONC_RATE_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
