package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"ADSKIT_CONFIG",
	"AI_PROVIDER",
	"GROQ_API_KEY",
	"ANTHROPIC_API_KEY",
	"AI_MODEL_PLAN",
	"AI_MODEL_COPY",
	"AI_BASE_URL",
	"AI_TIMEOUT",
	"AI_MAX_ATTEMPTS",
	"HTTP_ADDR",
	"LOG_LEVEL",
}

// clearEnv blanks every recognized variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "adskit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, ProviderGroq, cfg.AIProvider)
		assert.Equal(t, 60*time.Second, cfg.AITimeout)
		assert.Equal(t, 2, cfg.AIMaxAttempts)
		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.PlanModel)
		assert.Empty(t, cfg.CopyModel)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_PROVIDER", "anthropic")
		t.Setenv("ANTHROPIC_API_KEY", "sk-test")
		t.Setenv("AI_MODEL_PLAN", "plan-model")
		t.Setenv("AI_MODEL_COPY", "copy-model")
		t.Setenv("AI_TIMEOUT", "15s")
		t.Setenv("AI_MAX_ATTEMPTS", "3")
		t.Setenv("HTTP_ADDR", "127.0.0.1:9000")

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, ProviderAnthropic, cfg.AIProvider)
		assert.Equal(t, "sk-test", cfg.APIKey())
		assert.Equal(t, "plan-model", cfg.PlanModel)
		assert.Equal(t, "copy-model", cfg.CopyModel)
		assert.Equal(t, 15*time.Second, cfg.AITimeout)
		assert.Equal(t, 3, cfg.AIMaxAttempts)
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	})

	t.Run("invalid duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_TIMEOUT", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid AI_TIMEOUT")
	})

	t.Run("invalid attempts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_MAX_ATTEMPTS", "two")
		_, err := Load("")
		assert.ErrorContains(t, err, "invalid AI_MAX_ATTEMPTS")
	})
}

func TestLoad_File(t *testing.T) {
	const content = `
ai:
  provider: anthropic
  anthropic_api_key: sk-file
  plan_model: file-plan
  timeout: 30s
  max_attempts: 4
http:
  addr: ":9090"
log_level: debug
`

	t.Run("file values", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(writeConfig(t, content))
		require.NoError(t, err)

		assert.Equal(t, ProviderAnthropic, cfg.AIProvider)
		assert.Equal(t, "sk-file", cfg.AnthropicAPIKey)
		assert.Equal(t, "file-plan", cfg.PlanModel)
		assert.Equal(t, 30*time.Second, cfg.AITimeout)
		assert.Equal(t, 4, cfg.AIMaxAttempts)
		assert.Equal(t, ":9090", cfg.HTTPAddr)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_MODEL_PLAN", "env-plan")
		t.Setenv("AI_MAX_ATTEMPTS", "1")

		cfg, err := Load(writeConfig(t, content))
		require.NoError(t, err)
		assert.Equal(t, "env-plan", cfg.PlanModel)
		assert.Equal(t, 1, cfg.AIMaxAttempts)
		assert.Equal(t, "sk-file", cfg.AnthropicAPIKey)
	})

	t.Run("path from ADSKIT_CONFIG", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ADSKIT_CONFIG", writeConfig(t, content))

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.HTTPAddr)
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorContains(t, err, "read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeConfig(t, "ai: [unterminated"))
		assert.ErrorContains(t, err, "parse config file")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			AIProvider:    ProviderGroq,
			GroqAPIKey:    "gsk-test",
			AITimeout:     time.Minute,
			AIMaxAttempts: 2,
			HTTPAddr:      ":8080",
			LogLevel:      "info",
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
		assert.NoError(t, valid().ValidateForProvider())
		assert.NoError(t, valid().ValidateForServe())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero timeout", func(c *Config) { c.AITimeout = 0 }, "AI_TIMEOUT must be positive"},
		{"zero attempts", func(c *Config) { c.AIMaxAttempts = 0 }, "AI_MAX_ATTEMPTS must be at least 1"},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }, "invalid LOG_LEVEL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorContains(t, c.Validate(), tt.wantErr)
		})
	}

	t.Run("serve needs an address", func(t *testing.T) {
		c := valid()
		c.HTTPAddr = ""
		assert.ErrorContains(t, c.ValidateForServe(), "HTTP_ADDR is required")
	})
}

func TestValidateForProvider(t *testing.T) {
	base := Config{AITimeout: time.Minute, AIMaxAttempts: 2, LogLevel: "info"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"groq without key", func(c *Config) { c.AIProvider = ProviderGroq }, "GROQ_API_KEY is required"},
		{"anthropic without key", func(c *Config) {
			c.AIProvider = ProviderAnthropic
			c.GroqAPIKey = "gsk-test"
		}, "ANTHROPIC_API_KEY is required"},
		{"unknown provider", func(c *Config) { c.AIProvider = "openai" }, "invalid AI_PROVIDER: openai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.ErrorContains(t, c.ValidateForProvider(), tt.wantErr)
		})
	}

	t.Run("anthropic with key", func(t *testing.T) {
		c := base
		c.AIProvider = ProviderAnthropic
		c.AnthropicAPIKey = "sk-test"
		assert.NoError(t, c.ValidateForProvider())
		assert.Equal(t, "sk-test", c.APIKey())
	})
}
