package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownRenderer writes an incident-report document.
type MarkdownRenderer struct {
	// Now is overridable for deterministic output in tests; nil means
	// time.Now.
	Now func() time.Time
}

// Render writes the incident report: header metadata, the score table
// with reasons, then either the AI-written narrative or placeholder
// sections for a human to fill in.
func (m MarkdownRenderer) Render(w io.Writer, r Report) error {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	var b strings.Builder

	title := r.Fields.Summary
	if title == "" {
		title = "Incident Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	fmt.Fprintf(&b, "**Date:** %s\n", now().Format("2006-01-02"))
	if r.Fields.Key != "" {
		fmt.Fprintf(&b, "**Ticket:** %s\n", r.Fields.Key)
	}
	if r.Fields.CustomerName != "" {
		fmt.Fprintf(&b, "**Customer:** %s\n", r.Fields.CustomerName)
	}
	fmt.Fprintf(&b, "**Priority:** %s (impact score %.1f)\n", r.Result.Priority, r.Result.FinalScore)
	if len(r.Labels) > 0 {
		fmt.Fprintf(&b, "**Labels:** %s\n", strings.Join(r.Labels, ", "))
	}
	b.WriteString("\n")

	b.WriteString("## Impact Score\n\n")
	b.WriteString("| Component | Score | Max | Reasoning |\n")
	b.WriteString("|-----------|-------|-----|----------|\n")
	for _, row := range componentRows(r) {
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", row.Name, row.Score, row.Max, row.Reason)
	}
	c := r.Result.Components
	fmt.Fprintf(&b, "\n**Base score:** %d\n", r.Result.BaseScore)
	if c.SupportMultiplier > 0 || c.AccountMultiplier > 0 {
		fmt.Fprintf(&b, "**Multipliers:** support +%.0f%%, account +%.0f%%\n",
			c.SupportMultiplier*100, c.AccountMultiplier*100)
	}
	fmt.Fprintf(&b, "**Final score:** %.1f → %s\n\n", r.Result.FinalScore, r.Result.Priority)

	if r.AIDescription != "" {
		if r.AISummary != "" {
			b.WriteString("## Executive Summary\n\n")
			b.WriteString(r.AISummary + "\n\n")
		}
		b.WriteString(r.AIDescription)
		b.WriteString("\n")
	} else {
		b.WriteString("## Executive Summary\n\n")
		if r.Fields.Description != "" {
			b.WriteString(firstSentences(r.Fields.Description, 3) + "\n\n")
		} else {
			b.WriteString("_To be completed._\n\n")
		}
		b.WriteString("## Timeline\n\n_To be completed._\n\n")
		b.WriteString("## Root Cause\n\n")
		if r.Fields.RCA != "" {
			b.WriteString(r.Fields.RCA + "\n\n")
		} else {
			b.WriteString("_Investigation in progress._\n\n")
		}
		b.WriteString("## Workaround\n\n")
		if r.Fields.Workaround != "" {
			b.WriteString(r.Fields.Workaround + "\n\n")
		} else {
			b.WriteString("_No confirmed workaround._\n\n")
		}
		b.WriteString("## Action Items\n\n_To be completed._\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// firstSentences keeps the opening of a long description readable in the
// summary slot.
func firstSentences(text string, n int) string {
	text = strings.TrimSpace(text)
	count := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			count++
			if count == n {
				return text[:i+1]
			}
		}
	}
	return text
}
