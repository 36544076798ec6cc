// Package config provides environment-sourced configuration for the
// newsroom agent. The Config value is constructed once at process start and
// passed into the pipeline; stage logic never reads the environment itself.
package config

import (
	"os"
	"strconv"
)

// Request-boundary bounds for the article word-count target.
const (
	MinWordCount = 50
	MaxWordCount = 5000
)

// Config holds API credentials, model identifiers, and numeric defaults for
// the pipeline and server.
type Config struct {
	// API keys, one per stage backend
	DeepSeekAPIKey string
	OpenAIAPIKey   string
	GoogleAPIKey   string

	// Model identifiers and endpoints
	DeepSeekBaseURL   string
	ResearchModel     string
	DraftModel        string
	EditModel         string
	EditFallbackModel string

	// Server
	Host string
	Port int

	// Defaults for request parsing
	DefaultMaxLength int
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything but the API keys. Missing keys are not an error here: each
// stage reports its own configuration-missing outcome at call time.
func FromEnv() *Config {
	return &Config{
		DeepSeekAPIKey:    os.Getenv("DEEPSEEK_API_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		GoogleAPIKey:      os.Getenv("GOOGLE_API_KEY"),
		DeepSeekBaseURL:   getenv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
		ResearchModel:     getenv("DEEPSEEK_MODEL", "deepseek-chat"),
		DraftModel:        getenv("OPENAI_DRAFT_MODEL", "gpt-4-turbo-preview"),
		EditModel:         getenv("GEMINI_EDIT_MODEL", "gemini-2.0-flash"),
		EditFallbackModel: getenv("GEMINI_FALLBACK_MODEL", "gemini-1.5-flash-latest"),
		Host:              getenv("APP_HOST", "0.0.0.0"),
		Port:              getenvInt("APP_PORT", 8000),
		DefaultMaxLength:  getenvInt("DEFAULT_MAX_LENGTH", 1000),
	}
}

// MissingKeys returns the names of unset API-key variables, for startup
// warnings. A missing key disables the corresponding stage but does not
// prevent the process from serving.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.DeepSeekAPIKey == "" {
		missing = append(missing, "DEEPSEEK_API_KEY")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.GoogleAPIKey == "" {
		missing = append(missing, "GOOGLE_API_KEY")
	}
	return missing
}

// ClampLength bounds a requested word-count target to the accepted range.
// Non-positive values fall back to the configured default first.
func (c *Config) ClampLength(n int) int {
	if n <= 0 {
		n = c.DefaultMaxLength
	}
	if n < MinWordCount {
		return MinWordCount
	}
	if n > MaxWordCount {
		return MaxWordCount
	}
	return n
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
