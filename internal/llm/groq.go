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
	groqAPIURL       = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.1-70b-versatile"
)

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	apiKey     string
	baseURL    string
	planModel  string
	copyModel  string
	httpClient *http.Client
	log        *slog.Logger
}

// GroqConfig holds configuration for the Groq client.
type GroqConfig struct {
	APIKey    string
	BaseURL   string
	PlanModel string
	CopyModel string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewGroqClient creates a new Groq API client.
func NewGroqClient(config GroqConfig) *GroqClient {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = groqAPIURL
	}

	planModel := config.PlanModel
	if planModel == "" {
		planModel = groqDefaultModel
	}
	copyModel := config.CopyModel
	if copyModel == "" {
		copyModel = groqDefaultModel
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	log := config.Logger
	if log == nil {
		log = slog.Default()
	}

	return &GroqClient{
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

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// chatResponse is the response from the chat completions API.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Name returns the provider identifier.
func (c *GroqClient) Name() string {
	return ProviderGroq
}

// ChatJSON sends one chat completion request in JSON mode and returns the content.
func (c *GroqClient) ChatJSON(ctx context.Context, phase Phase, system, user string, opts Options) (string, error) {
	opts = opts.withDefaults()
	model := modelFor(phase, c.planModel, c.copyModel)

	req := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    opts.Temperature,
		MaxTokens:      opts.MaxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.Debug("calling chat completions",
		"provider", ProviderGroq,
		"phase", phase,
		"model", model,
		"max_tokens", opts.MaxTokens,
		"temperature", opts.Temperature,
	)
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGroq, Message: "send request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGroq, Message: "read response", Err: err}
	}

	c.log.Debug("chat completions responded",
		"provider", ProviderGroq,
		"phase", phase,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: ProviderGroq, StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", &ProviderError{Provider: ProviderGroq, Message: "unmarshal response", Err: err}
	}

	if chatResp.Error != nil {
		return "", &ProviderError{Provider: ProviderGroq, Message: chatResp.Error.Type + " - " + chatResp.Error.Message}
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: ProviderGroq, Message: "empty content"}
	}

	content := chatResp.Choices[0].Message.Content
	c.log.Debug("chat completion received", "provider", ProviderGroq, "phase", phase, "length", len(content))

	return content, nil
}
