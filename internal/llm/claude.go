package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	claudeAPIURL       = "https://api.anthropic.com/v1"
	claudeAPIVersion   = "2023-06-01"
	claudeDefaultModel = "claude-sonnet-4-20250514"
)

// ClaudeClient is a client for the Anthropic Messages API.
type ClaudeClient struct {
	apiKey     string
	baseURL    string
	planModel  string
	copyModel  string
	httpClient *http.Client
	log        *slog.Logger
}

// ClaudeConfig holds configuration for the Claude client.
type ClaudeConfig struct {
	APIKey    string
	BaseURL   string
	PlanModel string
	CopyModel string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewClaudeClient creates a new Claude API client.
func NewClaudeClient(config ClaudeConfig) *ClaudeClient {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = claudeAPIURL
	}

	planModel := config.PlanModel
	if planModel == "" {
		planModel = claudeDefaultModel
	}
	copyModel := config.CopyModel
	if copyModel == "" {
		copyModel = claudeDefaultModel
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	return &ClaudeClient{
		apiKey:    config.APIKey,
		baseURL:   baseURL,
		planModel: planModel,
		copyModel: copyModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// claudeRequest is the request body for the Messages API.
type claudeRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	System      string        `json:"system,omitempty"`
	Messages    []chatMessage `json:"messages"`
}

// claudeResponse is the response from the Messages API.
type claudeResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Name returns the provider identifier.
func (c *ClaudeClient) Name() string {
	return ProviderAnthropic
}

// ChatJSON sends a completion request to Claude. The Messages API has no JSON mode,
// so the prompts carry the JSON-only instruction.
func (c *ClaudeClient) ChatJSON(ctx context.Context, phase Phase, system, user string, opts Options) (string, error) {
	opts = opts.withDefaults()
	model := modelFor(phase, c.planModel, c.copyModel)

	req := claudeRequest{
		Model:       model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		System:      system,
		Messages: []chatMessage{
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", claudeAPIVersion)

	c.log.Debug("calling messages API", "provider", ProviderAnthropic, "phase", phase, "model", model)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: "send request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: ProviderAnthropic, StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(respBody, &claudeResp); err != nil {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: "unmarshal response", Err: err}
	}

	if claudeResp.Error != nil {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: claudeResp.Error.Type + " - " + claudeResp.Error.Message}
	}

	var text strings.Builder
	for _, block := range claudeResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", &ProviderError{Provider: ProviderAnthropic, Message: "empty response from API"}
	}

	c.log.Debug("messages API responded",
		"provider", ProviderAnthropic,
		"phase", phase,
		"elapsed", time.Since(start),
		"input_tokens", claudeResp.Usage.InputTokens,
		"output_tokens", claudeResp.Usage.OutputTokens,
	)

	return text.String(), nil
}
