// Package report renders a scored ticket for people: a styled console
// summary, a stable JSON record, or a Markdown incident report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/supportops/triage/internal/estimate"
	"github.com/supportops/triage/internal/score"
	"github.com/supportops/triage/internal/ticket"
)

// Report bundles everything the renderers can show about one ticket.
// Estimates and the AI narrative are optional; renderers skip what is
// absent.
type Report struct {
	Fields    ticket.Fields
	Estimates *estimate.Estimates
	Result    score.Result
	Labels    []string

	// Filled by the AI summarizer when requested.
	AISummary     string
	AIDescription string
}

// Renderer writes a report in one output format.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// ForFormat returns the renderer for a --format value.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", "console":
		return ConsoleRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	case "markdown", "md":
		return MarkdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// componentRow is one line of the component breakdown shared by the
// renderers.
type componentRow struct {
	Name   string
	Max    int
	Score  int
	Reason string
}

func componentRows(r Report) []componentRow {
	c := r.Result.Components
	rows := []componentRow{
		{Name: "Impact & Severity", Max: score.MaxImpactSeverity, Score: c.ImpactSeverity},
		{Name: "Customer ARR", Max: score.MaxCustomerARR, Score: c.CustomerARR},
		{Name: "SLA Breach", Max: score.MaxSLABreach, Score: c.SLABreach},
		{Name: "Frequency", Max: score.MaxFrequency, Score: c.Frequency},
		{Name: "Workaround", Max: score.MaxWorkaround, Score: c.Workaround},
		{Name: "RCA Action Item", Max: score.MaxRCAActionItem, Score: c.RCAActionItem},
	}
	if r.Estimates != nil {
		reasons := []string{
			r.Estimates.ImpactSeverity.Reason,
			r.Estimates.CustomerARR.Reason,
			r.Estimates.SLABreach.Reason,
			r.Estimates.Frequency.Reason,
			r.Estimates.Workaround.Reason,
			r.Estimates.RCAActionItem.Reason,
		}
		for i := range rows {
			rows[i].Reason = reasons[i]
		}
	}
	return rows
}
