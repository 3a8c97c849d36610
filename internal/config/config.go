// Package config loads runtime settings from the environment, consulting a
// .env file in the working directory when present. Every setting has a
// default; an empty environment yields a working configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLanguages         = "LABELSCAN_LANGUAGES"
	EnvTargetWidth       = "LABELSCAN_TARGET_WIDTH"
	EnvMinWordConfidence = "LABELSCAN_MIN_WORD_CONF"
	EnvFetchTimeout      = "LABELSCAN_FETCH_TIMEOUT"
	EnvWorkers           = "LABELSCAN_WORKERS"
	EnvLogLevel          = "LABELSCAN_LOG_LEVEL"
	EnvAnnotateDir       = "LABELSCAN_ANNOTATE_DIR"
)

// Config holds the runtime settings shared by the CLI and batch runner.
type Config struct {
	// Languages are the Tesseract language codes to recognize.
	Languages []string
	// TargetWidth is the normalized working width in pixels.
	TargetWidth int
	// MinWordConfidence is the word confidence floor, 0-100.
	MinWordConfidence float64
	// FetchTimeout bounds remote image downloads.
	FetchTimeout time.Duration
	// Workers is the batch pool size.
	Workers int
	// LogLevel is "debug" or "info".
	LogLevel string
	// AnnotateDir, when set, receives detection overlay PNGs.
	AnnotateDir string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first; real environment variables win
// over file entries. The returned config is validated.
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Languages:         splitLanguages(getEnv(EnvLanguages, "eng+hin")),
		TargetWidth:       getEnvInt(EnvTargetWidth, 1200),
		MinWordConfidence: getEnvFloat(EnvMinWordConfidence, 60),
		FetchTimeout:      time.Duration(getEnvInt(EnvFetchTimeout, 30)) * time.Second,
		Workers:           getEnvInt(EnvWorkers, 5),
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, "info")),
		AnnotateDir:       getEnv(EnvAnnotateDir, ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("%s must name at least one language", EnvLanguages)
	}
	if c.TargetWidth <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvTargetWidth, c.TargetWidth)
	}
	if c.MinWordConfidence < 0 || c.MinWordConfidence > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %v", EnvMinWordConfidence, c.MinWordConfidence)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvFetchTimeout)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%s must be positive, got %d", EnvWorkers, c.Workers)
	}
	return nil
}

// splitLanguages parses a language list separated by "+" or ",", the two
// conventions Tesseract users write ("eng+hin", "eng,hin").
func splitLanguages(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ','
	})
	langs := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			langs = append(langs, trimmed)
		}
	}
	return langs
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
