package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear anything inherited from the test environment.
	for _, key := range []string{"HOST", "PORT", "AI_MODEL", "AI_MAX_TOKENS", "AI_TEMPERATURE",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "LLM_PROVIDER", "LOG_LEVEL", "ENVIRONMENT", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "gpt-4", cfg.AIModel)
	assert.Equal(t, 500, cfg.AIMaxTokens)
	assert.InDelta(t, 0.7, cfg.AITemperature, 1e-9)
	assert.Equal(t, 30, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_MAX_TOKENS", "900")
	t.Setenv("AI_TEMPERATURE", "0.2")
	t.Setenv("RATE_LIMIT_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "90")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DEBUG", "true")

	cfg := Load()

	assert.Equal(t, "gpt-4o-mini", cfg.AIModel)
	assert.Equal(t, 900, cfg.AIMaxTokens)
	assert.InDelta(t, 0.2, cfg.AITemperature, 1e-9)
	assert.Equal(t, 5, cfg.RateLimitRequests)
	assert.Equal(t, 90*time.Second, cfg.RateLimitWindow, "bare integers are seconds")
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_WindowAcceptsDurationSyntax(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "2m")
	cfg := Load()
	assert.Equal(t, 2*time.Minute, cfg.RateLimitWindow)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Provider: "openai", RateLimitRequests: 30}
	require.Error(t, cfg.Validate(), "OpenAI key is required")

	cfg.OpenAIAPIKey = "sk-test"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "anthropic"
	require.Error(t, cfg.Validate(), "Anthropic key is required")
	cfg.AnthropicAPIKey = "ak-test"
	require.NoError(t, cfg.Validate())

	cfg.Provider = "mystery"
	require.Error(t, cfg.Validate())

	cfg.Provider = "openai"
	cfg.RateLimitRequests = 0
	require.Error(t, cfg.Validate())
}

func TestAllowedOriginsList(t *testing.T) {
	cfg := &Config{AllowedOrigins: "http://localhost:3000, https://example.com ,https://www.example.com"}
	assert.Equal(t, []string{
		"http://localhost:3000",
		"https://example.com",
		"https://www.example.com",
	}, cfg.AllowedOriginsList())
}
