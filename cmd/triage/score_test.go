package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/llm"
	"github.com/supportops/triage/internal/ticket"
)

func TestNewLLMClientMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := newLLMClient()
	require.Error(t, err)

	var userErr *common.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.UserMessage, "ANTHROPIC_API_KEY")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestScoreCmdRequiresInput(t *testing.T) {
	cmd := scoreCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file or explicit component flags")
}

func TestScoreCmdFlagInput(t *testing.T) {
	cmd := scoreCmd()
	cmd.SetArgs([]string{
		"--severity", "30",
		"--arr", "15",
		"--frequency", "8",
		"--workaround", "10",
		"--format", "json",
	})

	require.NoError(t, cmd.Execute())
}

type stubSummarizer struct {
	req llm.SummaryRequest
}

func (s *stubSummarizer) Summarize(_ context.Context, req llm.SummaryRequest) (llm.SummaryResponse, error) {
	s.req = req
	return llm.SummaryResponse{Summary: "one-liner", Description: "details"}, nil
}

func TestSummarizeTicketBuildsConversation(t *testing.T) {
	stub := &stubSummarizer{}
	fields := ticket.Fields{
		Key:          "PROJ-42",
		Summary:      "API timeouts",
		Description:  "Requests to /v1/orders time out after 30s.",
		CustomerName: "Acme",
	}

	resp, err := summarizeTicket(summarizeCmd(), stub, fields, "", "Widgets")
	require.NoError(t, err)

	assert.Equal(t, "one-liner", resp.Summary)
	assert.Equal(t, "PROJ-42", stub.req.TicketID)
	assert.Equal(t, "Acme", stub.req.Customer)
	assert.Equal(t, "Widgets", stub.req.Product)
	assert.Contains(t, stub.req.Conversation, "API timeouts")
	assert.Contains(t, stub.req.Conversation, "time out after 30s")
}

func TestSummarizeTicketCustomerOverride(t *testing.T) {
	stub := &stubSummarizer{}
	fields := ticket.Fields{Key: "PROJ-7", CustomerName: "Acme"}

	_, err := summarizeTicket(summarizeCmd(), stub, fields, "Initech", "")
	require.NoError(t, err)
	assert.Equal(t, "Initech", stub.req.Customer)
}
