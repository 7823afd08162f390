// Package config holds runtime settings for the CLI and HTTP server.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for gonc
type Config struct {
	Addr           string        // HTTP listen address
	LexiconPath    string        // SQLite lexicon file
	Strict         bool          // Phrase negation and whole-word connectors
	MaxUploadBytes int64         // Upload size limit
	RateLimit      float64       // Analysis requests per second
	RateBurst      int           // Rate limiter burst
	FetchTimeout   time.Duration // URL fetch timeout
	CORSOrigins    []string      // Allowed CORS origins
	SentryDSN      string        // Error reporting; empty disables it
	Environment    string        // Sentry environment tag
}

// Default returns the default configuration
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Addr:           ":8080",
		LexiconPath:    filepath.Join(home, ".gonc", "lexicon.db"),
		MaxUploadBytes: 10 << 20,
		RateLimit:      5,
		RateBurst:      10,
		FetchTimeout:   30 * time.Second,
		CORSOrigins:    []string{"*"},
		Environment:    "development",
	}
}

// Load reads the given .env files (the default ".env" when none are named),
// then applies environment overrides on top of Default. Missing files are
// not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] .env not loaded: %v", err)
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GONC_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GONC_LEXICON"); v != "" {
		c.LexiconPath = v
	}
	if v := os.Getenv("GONC_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse GONC_STRICT: %w", err)
		}
		c.Strict = b
	}
	if v := os.Getenv("GONC_MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse GONC_MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v := os.Getenv("GONC_RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse GONC_RATE_LIMIT: %w", err)
		}
		c.RateLimit = f
	}
	if v := os.Getenv("GONC_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse GONC_RATE_BURST: %w", err)
		}
		c.RateBurst = n
	}
	if v := os.Getenv("GONC_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		c.SentryDSN = v
	}
	if v := os.Getenv("GONC_ENV"); v != "" {
		c.Environment = v
	}
	return nil
}

// Validate checks that limits are usable
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr cannot be empty")
	}
	if c.LexiconPath == "" {
		return errors.New("lexicon path cannot be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload bytes must be positive (current value: %d)", c.MaxUploadBytes)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive (current value: %g)", c.RateLimit)
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("rate burst must be at least 1 (current value: %d)", c.RateBurst)
	}
	return nil
}
