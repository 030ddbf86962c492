package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportops/triage/internal/estimate"
	"github.com/supportops/triage/internal/score"
	"github.com/supportops/triage/internal/ticket"
)

func sampleReport(t *testing.T) Report {
	t.Helper()

	components := score.Components{
		ImpactSeverity: 30,
		CustomerARR:    15,
		Workaround:     10,
		RCAActionItem:  8,
	}
	result, err := score.Compute(components)
	require.NoError(t, err)

	return Report{
		Fields: ticket.Fields{
			Key:          "RED-12345",
			Summary:      "FedEx - CRDB replication failure",
			Description:  "Replication broke after failover. Slave OVC ahead of master. Customer blocked.",
			CustomerName: "FedEx",
		},
		Estimates: &estimate.Estimates{
			ImpactSeverity: estimate.Estimate{Score: 30, Reason: "Priority 'high' indicates 30 points"},
			CustomerARR:    estimate.Estimate{Score: 15, Reason: "VIP customer 'fedex' identified"},
			SLABreach:      estimate.Estimate{Score: 0, Reason: "No SLA breach indicators found"},
			Frequency:      estimate.Estimate{Score: 0, Reason: "No clear frequency indicators, assuming single occurrence"},
			Workaround:     estimate.Estimate{Score: 10, Reason: "Complex workaround found"},
			RCAActionItem:  estimate.Estimate{Score: 8, Reason: "RCA keyword 'root cause' found"},
		},
		Result: result,
		Labels: []string{"fedex", "crdb", "ovc"},
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"", "console", "json", "markdown", "md", "JSON"} {
		r, err := ForFormat(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, r)
	}

	_, err := ForFormat("xml")
	assert.Error(t, err)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, sampleReport(t)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "RED-12345", decoded["ticket"])

	components, ok := decoded["components"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 30, components["impact_severity"], 1e-9)
	assert.InDelta(t, 0, components["sla_breach"], 1e-9)

	scores, ok := decoded["scores"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 63, scores["base_score"], 1e-9)
	assert.InDelta(t, 63.0, scores["final_score"], 1e-9)
	assert.Equal(t, "MEDIUM", scores["priority"])

	reasoning, ok := decoded["reasoning"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VIP customer 'fedex' identified", reasoning["customer_arr"])
}

func TestJSONRendererWithoutEstimates(t *testing.T) {
	r := sampleReport(t)
	r.Estimates = nil

	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, r))
	assert.NotContains(t, buf.String(), "reasoning")
}

func TestMarkdownRenderer(t *testing.T) {
	renderer := MarkdownRenderer{Now: func() time.Time {
		return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	}}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "# FedEx - CRDB replication failure")
	assert.Contains(t, out, "**Date:** 2025-03-14")
	assert.Contains(t, out, "**Ticket:** RED-12345")
	assert.Contains(t, out, "| Impact & Severity | 30 | 38 |")
	assert.Contains(t, out, "**Final score:** 63.0 → MEDIUM")
	assert.Contains(t, out, "## Timeline")
	assert.Contains(t, out, "## Action Items")
	// Description feeds the executive summary placeholder.
	assert.Contains(t, out, "Replication broke after failover.")
}

func TestMarkdownRendererWithAINarrative(t *testing.T) {
	r := sampleReport(t)
	r.AISummary = "FedEx - OVC corruption causing replication failure"
	r.AIDescription = "## Problem Statement\nThe cluster lost replication."

	var buf bytes.Buffer
	require.NoError(t, MarkdownRenderer{}.Render(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "## Executive Summary")
	assert.Contains(t, out, "OVC corruption causing replication failure")
	assert.Contains(t, out, "## Problem Statement")
	// The placeholder skeleton is replaced by the narrative.
	assert.NotContains(t, out, "_To be completed._")
}

func TestConsoleRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ConsoleRenderer{}.Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "Impact Score: RED-12345")
	assert.Contains(t, out, "Impact & Severity")
	assert.Contains(t, out, "Base score:  63")
	assert.Contains(t, out, "fedex, crdb, ovc")
}
