package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/supportops/triage/internal/cli"
)

// ConsoleRenderer writes a styled terminal summary.
type ConsoleRenderer struct{}

// Render writes the score breakdown with tier-colored totals.
func (ConsoleRenderer) Render(w io.Writer, r Report) error {
	title := "Impact Score"
	if r.Fields.Key != "" {
		title = fmt.Sprintf("Impact Score: %s", r.Fields.Key)
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle(title) + "\n")
	if r.Fields.Summary != "" {
		b.WriteString(cli.SubtitleStyle.Render(r.Fields.Summary) + "\n")
	}
	b.WriteString("\n")

	for _, row := range componentRows(r) {
		fmt.Fprintf(&b, "  %-18s %2d / %2d", row.Name, row.Score, row.Max)
		if row.Reason != "" {
			b.WriteString("   " + cli.SubtleStyle.Render(row.Reason))
		}
		b.WriteString("\n")
	}

	c := r.Result.Components
	if c.SupportMultiplier > 0 || c.AccountMultiplier > 0 {
		fmt.Fprintf(&b, "  %-18s +%.0f%%\n", "Support multiplier", c.SupportMultiplier*100)
		fmt.Fprintf(&b, "  %-18s +%.0f%%\n", "Account multiplier", c.AccountMultiplier*100)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  Base score:  %d\n", r.Result.BaseScore)
	fmt.Fprintf(&b, "  Final score: %s\n", cli.FormatScore(r.Result.FinalScore))
	fmt.Fprintf(&b, "  Priority:    %s\n", cli.FormatTier(r.Result.Priority))

	if len(r.Labels) > 0 {
		fmt.Fprintf(&b, "  Labels:      %s\n", strings.Join(r.Labels, ", "))
	}
	if r.AISummary != "" {
		b.WriteString("\n" + cli.BoldStyle.Render("AI summary: ") + r.AISummary + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
