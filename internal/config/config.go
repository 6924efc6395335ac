package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported AI providers.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// Config holds all application configuration.
type Config struct {
	// AI provider
	AIProvider      string // "groq" or "anthropic" (default: groq)
	GroqAPIKey      string
	AnthropicAPIKey string
	PlanModel       string // model for the campaign plan phase (default: provider default)
	CopyModel       string // model for the ad copy phase (default: provider default)
	AIBaseURL       string
	AITimeout       time.Duration
	AIMaxAttempts   int

	// HTTP
	HTTPAddr string

	// Logging
	LogLevel string
}

// fileConfig is the optional YAML configuration file layout.
type fileConfig struct {
	AI struct {
		Provider        string `yaml:"provider"`
		GroqAPIKey      string `yaml:"groq_api_key"`
		AnthropicAPIKey string `yaml:"anthropic_api_key"`
		PlanModel       string `yaml:"plan_model"`
		CopyModel       string `yaml:"copy_model"`
		BaseURL         string `yaml:"base_url"`
		Timeout         string `yaml:"timeout"`
		MaxAttempts     int    `yaml:"max_attempts"`
	} `yaml:"ai"`
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from an optional YAML file and environment
// variables, with environment variables taking precedence. It automatically
// loads .env file if present. An empty path falls back to ADSKIT_CONFIG.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("ADSKIT_CONFIG")
	}

	var file fileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		AIProvider:      getEnv("AI_PROVIDER", orDefault(file.AI.Provider, ProviderGroq)),
		GroqAPIKey:      getEnv("GROQ_API_KEY", file.AI.GroqAPIKey),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", file.AI.AnthropicAPIKey),
		PlanModel:       getEnv("AI_MODEL_PLAN", file.AI.PlanModel),
		CopyModel:       getEnv("AI_MODEL_COPY", file.AI.CopyModel),
		AIBaseURL:       getEnv("AI_BASE_URL", file.AI.BaseURL),
		HTTPAddr:        getEnv("HTTP_ADDR", orDefault(file.HTTP.Addr, ":8080")),
		LogLevel:        getEnv("LOG_LEVEL", orDefault(file.LogLevel, "info")),
	}

	// Parse durations
	var err error
	cfg.AITimeout, err = time.ParseDuration(getEnv("AI_TIMEOUT", orDefault(file.AI.Timeout, "60s")))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_TIMEOUT: %w", err)
	}

	// Parse integers
	defaultAttempts := "2"
	if file.AI.MaxAttempts > 0 {
		defaultAttempts = strconv.Itoa(file.AI.MaxAttempts)
	}
	cfg.AIMaxAttempts, err = strconv.Atoi(getEnv("AI_MAX_ATTEMPTS", defaultAttempts))
	if err != nil {
		return nil, fmt.Errorf("invalid AI_MAX_ATTEMPTS: %w", err)
	}

	return cfg, nil
}

// Validate checks that generic configuration values are usable.
func (c *Config) Validate() error {
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}
	if c.AIMaxAttempts < 1 {
		return fmt.Errorf("AI_MAX_ATTEMPTS must be at least 1, got %d", c.AIMaxAttempts)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be 'debug', 'info', 'warn' or 'error')", c.LogLevel)
	}
	return nil
}

// ValidateForProvider checks the credential of the selected AI provider.
func (c *Config) ValidateForProvider() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.AIProvider {
	case ProviderGroq, "":
		if c.GroqAPIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when AI_PROVIDER is groq")
		}
	case ProviderAnthropic:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when AI_PROVIDER is anthropic")
		}
	default:
		return fmt.Errorf("invalid AI_PROVIDER: %s (must be 'groq' or 'anthropic')", c.AIProvider)
	}
	return nil
}

// ValidateForServe checks configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	return c.Validate()
}

// APIKey returns the credential of the selected provider.
func (c *Config) APIKey() string {
	if c.AIProvider == ProviderAnthropic {
		return c.AnthropicAPIKey
	}
	return c.GroqAPIKey
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func orDefault(val, defaultVal string) string {
	if val != "" {
		return val
	}
	return defaultVal
}
