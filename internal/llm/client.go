// Package llm turns a raw support-ticket conversation into a structured
// incident summary and description via a generative AI provider. The
// scoring pipeline never depends on it; commands that want an AI-written
// incident narrative opt in explicitly.
package llm

import (
	"context"
	"time"
)

// SummaryRequest carries one ticket conversation to summarize.
type SummaryRequest struct {
	TicketID     string
	Customer     string
	Product      string
	Conversation string
}

// SummaryResponse is the parsed model output.
type SummaryResponse struct {
	Summary     string
	Description string
	Model       string
}

// Client generates incident summaries from ticket conversations.
type Client interface {
	Summarize(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}

// Config holds LLM client configuration.
type Config struct {
	Provider          string
	Model             string
	APIKey            string
	MaxTokens         int
	Temperature       float64
	MaxRetries        int
	RetryDelay        time.Duration
	RateLimitPerMin   int
	TimeoutPerRequest time.Duration
}
