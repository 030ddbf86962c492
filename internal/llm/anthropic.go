package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/supportops/triage/internal/common"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// anthropicClient implements Client over the Anthropic messages API.
type anthropicClient struct {
	client      anthropic.Client
	limiter     *rateLimiter
	model       string
	maxTokens   int
	temperature float64
	maxRetries  int
	retryDelay  time.Duration
	timeout     time.Duration
}

// newAnthropicClient creates a new Anthropic API client.
func newAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 8000
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = time.Second
	}
	timeout := cfg.TimeoutPerRequest
	if timeout == 0 {
		timeout = 2 * time.Minute
	}

	return &anthropicClient{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
		model:       model,
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		maxRetries:  maxRetries,
		retryDelay:  retryDelay,
		timeout:     timeout,
	}, nil
}

// Summarize sends the ticket conversation to the model and parses the
// SUMMARY/DESCRIPTION response. Rate limited and retried on transient
// failures.
func (c *anthropicClient) Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return SummaryResponse{}, fmt.Errorf("rate limit wait failed: %w", err)
	}

	prompt := buildIncidentPrompt(req)

	var resp SummaryResponse
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		start := time.Now()
		message, err := c.client.Messages.New(callCtx, anthropic.MessageNewParams{
			Model:       anthropic.Model(c.model),
			MaxTokens:   int64(c.maxTokens),
			Temperature: anthropic.Float(c.temperature),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return classifyAPIError(err)
		}

		slog.Debug("Anthropic call completed",
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds(),
			"input_tokens", message.Usage.InputTokens,
			"output_tokens", message.Usage.OutputTokens)

		var text string
		for _, block := range message.Content {
			if block.Type == "text" {
				text += block.Text
			}
		}
		if text == "" {
			return &common.RetryableError{
				Err:       fmt.Errorf("no text content in Anthropic response"),
				Retryable: true,
			}
		}

		summary, description := parseSummaryResponse(text)
		resp = SummaryResponse{Summary: summary, Description: description, Model: c.model}
		return nil
	}

	err := common.WithRetry(ctx, operation, common.RetryOptions{
		MaxAttempts:  c.maxRetries,
		InitialDelay: c.retryDelay,
	})
	if err != nil {
		return SummaryResponse{}, fmt.Errorf("anthropic summarize failed: %w", err)
	}
	return resp, nil
}

// classifyAPIError tags rate-limit and server-side failures as retryable.
func classifyAPIError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", common.ErrRateLimit, err)
		case apiErr.StatusCode >= 500:
			return &common.RetryableError{Err: err, Retryable: true}
		}
		return &common.RetryableError{Err: err, Retryable: false}
	}
	// Network-level errors are worth another attempt.
	return &common.RetryableError{Err: err, Retryable: true}
}
