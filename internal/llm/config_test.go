package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 80, cfg.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.001)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.Retries)
	assert.Equal(t, 1000, cfg.RetryDelayMs)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("KALENDER_OPENAI_API_KEY", "sk-abc")
	t.Setenv("KALENDER_OPENAI_MODEL", "gpt-4o")
	t.Setenv("KALENDER_OPENAI_BASE_URL", "http://localhost:8080/v1/")
	t.Setenv("KALENDER_LLM_TIMEOUT_MS", "5000")
	t.Setenv("KALENDER_LLM_RETRIES", "5")
	t.Setenv("KALENDER_LLM_RETRY_DELAY_MS", "250")
	t.Setenv("KALENDER_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled())
	assert.Equal(t, "sk-abc", cfg.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL, "trailing slash trimmed")
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, 250, cfg.RetryDelayMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_FallsBackToOpenAIKey(t *testing.T) {
	t.Setenv("KALENDER_OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-fallback")

	cfg := LoadConfig()
	assert.Equal(t, "sk-fallback", cfg.APIKey)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("KALENDER_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("KALENDER_LLM_RETRIES", "-2")
	t.Setenv("KALENDER_LLM_TEMPERATURE", "9.5")

	cfg := LoadConfig()
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.Retries)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.001)
}
