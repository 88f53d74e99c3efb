package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"seoagent-go/pkg/logger"
)

// Config holds chat completion client configuration.
type Config struct {
	BaseURL      string
	APIKey       string
	DefaultModel string
	Timeout      time.Duration
}

const (
	defaultBaseURL = "https://api.openai.com"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 60 * time.Second
)

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	config Config
	client *fasthttp.Client
	log    *logger.Logger
}

// NewClient creates a chat completion client. A missing API key is a
// configuration error and fails here, never per-call.
func NewClient(config Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("chat API key is required - set OPENAI_API_KEY environment variable")
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.DefaultModel == "" {
		config.DefaultModel = defaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	client := &fasthttp.Client{
		ReadTimeout:         config.Timeout,
		WriteTimeout:        config.Timeout,
		MaxConnsPerHost:     100,
		MaxIdleConnDuration: 90 * time.Second,
	}

	return &Client{
		config: config,
		client: client,
		log:    logger.GetLogger().WithComponent("llm_client"),
	}, nil
}

// Complete sends one chat completion request and returns the assistant text.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	model := req.Model
	if model == "" {
		model = c.config.DefaultModel
	}

	wireReq := chatRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		wireReq.Messages = append(wireReq.Messages, Message{Role: "system", Content: req.System})
	}
	wireReq.Messages = append(wireReq.Messages, Message{Role: "user", Content: req.Prompt})

	body, err := json.Marshal(wireReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq := fasthttp.AcquireRequest()
	httpResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(httpReq)
	defer fasthttp.ReleaseResponse(httpResp)

	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/v1/chat/completions"
	httpReq.SetRequestURI(url)
	httpReq.Header.SetMethod(fasthttp.MethodPost)
	httpReq.Header.SetContentType("application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	httpReq.SetBody(body)

	start := time.Now()
	if err := c.client.DoTimeout(httpReq, httpResp, c.config.Timeout); err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}

	if httpResp.StatusCode() != fasthttp.StatusOK {
		return "", fmt.Errorf("chat API returned status %d: %s", httpResp.StatusCode(), truncate(string(httpResp.Body()), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(httpResp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}

	c.log.WithFields(map[string]interface{}{
		"model":         model,
		"total_tokens":  parsed.Usage.TotalTokens,
		"finish_reason": parsed.Choices[0].FinishReason,
		"duration_ms":   time.Since(start).Milliseconds(),
	}).Debug("Chat completion finished")

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// truncate shortens s for log and error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
