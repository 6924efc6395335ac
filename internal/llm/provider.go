package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Phase identifies which generation step a request belongs to.
// Providers use it to pick a model instead of inspecting prompt text.
type Phase int

const (
	PhasePlan Phase = iota
	PhaseCopy
)

func (p Phase) String() string {
	switch p {
	case PhasePlan:
		return "plan"
	case PhaseCopy:
		return "copy"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	defaultMaxTokens   = 1400
	defaultTemperature = 0.2
	defaultTimeout     = 60 * time.Second
)

// Options tunes a single completion call. Zero values fall back to defaults.
type Options struct {
	MaxTokens   int
	Temperature float64
}

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Temperature <= 0 {
		o.Temperature = defaultTemperature
	}
	return o
}

// Provider issues one chat completion and returns the raw text content.
// Implementations do not retry; callers own the retry policy.
type Provider interface {
	Name() string
	ChatJSON(ctx context.Context, phase Phase, system, user string, opts Options) (string, error)
}

// ProviderError reports a failed upstream call or an empty completion.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s API error: %s", e.Provider, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Provider names accepted by New.
const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
)

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	BaseURL   string
	PlanModel string
	CopyModel string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// New builds the provider named in cfg.
func New(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderGroq, "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required when AI_PROVIDER=groq")
		}
		return NewGroqClient(GroqConfig{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			PlanModel: cfg.PlanModel,
			CopyModel: cfg.CopyModel,
			Timeout:   cfg.Timeout,
			Logger:    cfg.Logger,
		}), nil
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required when AI_PROVIDER=anthropic")
		}
		return NewClaudeClient(ClaudeConfig{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			PlanModel: cfg.PlanModel,
			CopyModel: cfg.CopyModel,
			Timeout:   cfg.Timeout,
			Logger:    cfg.Logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown AI_PROVIDER: %s", cfg.Provider)
	}
}

func modelFor(phase Phase, plan, copyModel string) string {
	if phase == PhaseCopy {
		return copyModel
	}
	return plan
}
