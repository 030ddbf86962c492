package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONRenderer writes the stable machine-readable record.
type JSONRenderer struct{}

type jsonReport struct {
	Ticket    string            `json:"ticket,omitempty"`
	Summary   string            `json:"summary,omitempty"`
	Labels    []string          `json:"labels,omitempty"`
	Component map[string]int    `json:"components"`
	Reasoning map[string]string `json:"reasoning,omitempty"`
	Scores    jsonScores        `json:"scores"`
	AISummary string            `json:"ai_summary,omitempty"`
}

type jsonScores struct {
	BaseScore         int     `json:"base_score"`
	FinalScore        float64 `json:"final_score"`
	SupportMultiplier float64 `json:"support_multiplier"`
	AccountMultiplier float64 `json:"account_multiplier"`
	Priority          string  `json:"priority"`
}

// Render writes the report as indented JSON with snake_case keys.
func (JSONRenderer) Render(w io.Writer, r Report) error {
	c := r.Result.Components
	out := jsonReport{
		Ticket:  r.Fields.Key,
		Summary: r.Fields.Summary,
		Labels:  r.Labels,
		Component: map[string]int{
			"impact_severity": c.ImpactSeverity,
			"customer_arr":    c.CustomerARR,
			"sla_breach":      c.SLABreach,
			"frequency":       c.Frequency,
			"workaround":      c.Workaround,
			"rca_action_item": c.RCAActionItem,
		},
		Scores: jsonScores{
			BaseScore:         r.Result.BaseScore,
			FinalScore:        r.Result.FinalScore,
			SupportMultiplier: c.SupportMultiplier,
			AccountMultiplier: c.AccountMultiplier,
			Priority:          string(r.Result.Priority),
		},
		AISummary: r.AISummary,
	}
	if r.Estimates != nil {
		reasoning := r.Estimates.Reasoning()
		out.Reasoning = map[string]string{
			"impact_severity": reasoning.ImpactSeverity,
			"customer_arr":    reasoning.CustomerARR,
			"sla_breach":      reasoning.SLABreach,
			"frequency":       reasoning.Frequency,
			"workaround":      reasoning.Workaround,
			"rca_action_item": reasoning.RCAActionItem,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
