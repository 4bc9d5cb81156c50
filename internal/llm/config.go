package llm

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the text-generation subsystem.
type Config struct {
	APIKey       string
	Model        string
	BaseURL      string
	MaxTokens    int
	Temperature  float64
	TimeoutMs    int
	Retries      int
	RetryDelayMs int
	LogCalls     bool
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled until an API key is configured.
func DefaultConfig() Config {
	return Config{
		APIKey:       "",
		Model:        "gpt-4o-mini",
		BaseURL:      "https://api.openai.com/v1",
		MaxTokens:    80,
		Temperature:  0.7,
		TimeoutMs:    15000,
		Retries:      3,
		RetryDelayMs: 1000,
		LogCalls:     false,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values. OPENAI_API_KEY is
// honored when the KALENDER-prefixed variable is absent.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("KALENDER_OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("KALENDER_OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("KALENDER_OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("KALENDER_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("KALENDER_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("KALENDER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("KALENDER_LLM_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retries = n
		}
	}
	if v := os.Getenv("KALENDER_LLM_RETRY_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RetryDelayMs = n
		}
	}
	if v := os.Getenv("KALENDER_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Enabled reports whether a credential is configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}
