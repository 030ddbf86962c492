package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/supportops/triage/internal/score"
)

// Option is one selectable answer in a component menu.
type Option struct {
	Key         string
	Description string
	Score       int
}

// Prompter drives the interactive estimation flow: one menu per scoring
// component, looping until the answer is valid.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a Prompter reading answers from r and writing menus
// to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// SeverityOptions returns the P1-P5 impact menu.
func SeverityOptions() []Option {
	return []Option{
		{Key: "P1", Score: 38, Description: "Service stopped with no backup/redundancy, multiple services degraded, immediate financial/security impact"},
		{Key: "P2", Score: 30, Description: "Single service degraded, immediate financial/security impact"},
		{Key: "P3", Score: 22, Description: "Non-critical service stopped/degraded, critical service at risk, possible financial impact"},
		{Key: "P4", Score: 16, Description: "Non-critical service at risk"},
		{Key: "P5", Score: 8, Description: "No current or potential impact (informational)"},
	}
}

// ARROptions returns the customer ARR band menu.
func ARROptions() []Option {
	return []Option{
		{Key: "1", Score: 15, Description: "ARR > $1M"},
		{Key: "2", Score: 13, Description: "$1M > ARR > $500K"},
		{Key: "3", Score: 10, Description: "$500K > ARR > $100K"},
		{Key: "4", Score: 8, Description: ">10 low ARR customers"},
		{Key: "5", Score: 5, Description: "<10 low ARR customers"},
		{Key: "6", Score: 0, Description: "Single low ARR customer"},
	}
}

// SLAOptions returns the SLA breach yes/no menu.
func SLAOptions() []Option {
	return []Option{
		{Key: "Y", Score: 8, Description: "SLA breached or manual recovery required"},
		{Key: "N", Score: 0, Description: "SLA not breached or automatic recovery"},
	}
}

// FrequencyOptions returns the occurrence count menu.
func FrequencyOptions() []Option {
	return []Option{
		{Key: "1", Score: 0, Description: "1 occurrence"},
		{Key: "2", Score: 8, Description: "2-4 occurrences"},
		{Key: "3", Score: 16, Description: ">4 occurrences"},
	}
}

// WorkaroundOptions returns the workaround effort menu.
func WorkaroundOptions() []Option {
	return []Option{
		{Key: "1", Score: 5, Description: "Simple workaround (single command), no performance impact"},
		{Key: "2", Score: 10, Description: "Complex workaround (multiple steps), no performance impact"},
		{Key: "3", Score: 12, Description: "Workaround available with performance impact"},
		{Key: "4", Score: 15, Description: "No workaround; fix requires new version"},
	}
}

// RCAOptions returns the RCA action item yes/no menu.
func RCAOptions() []Option {
	return []Option{
		{Key: "Y", Score: 8, Description: "Ticket is part of RCA action items"},
		{Key: "N", Score: 0, Description: "Ticket is not part of RCA action items"},
	}
}

// PromptComponents walks through all six component menus plus the two
// multipliers and returns the assembled components.
func (p *Prompter) PromptComponents(ctx context.Context) (score.Components, error) {
	var c score.Components
	var err error

	if c.ImpactSeverity, err = p.Select(ctx, "1. IMPACT & SEVERITY (Max 38 points)", "Select priority level (P1-P5)", SeverityOptions()); err != nil {
		return score.Components{}, err
	}
	if c.CustomerARR, err = p.Select(ctx, "2. CUSTOMER ARR (Max 15 points)", "Select ARR level (1-6)", ARROptions()); err != nil {
		return score.Components{}, err
	}
	if c.SLABreach, err = p.Select(ctx, "3. SLA BREACH (Max 8 points)", "Was SLA breached? (Y/N)", SLAOptions()); err != nil {
		return score.Components{}, err
	}
	if c.Frequency, err = p.Select(ctx, "4. FREQUENCY (Max 16 points)", "Select frequency (1-3)", FrequencyOptions()); err != nil {
		return score.Components{}, err
	}
	if c.Workaround, err = p.Select(ctx, "5. WORKAROUND (Max 15 points)", "Select workaround status (1-4)", WorkaroundOptions()); err != nil {
		return score.Components{}, err
	}
	if c.RCAActionItem, err = p.Select(ctx, "6. RCA ACTION ITEM (Max 8 points)", "Is this an RCA action item? (Y/N)", RCAOptions()); err != nil {
		return score.Components{}, err
	}
	if c.SupportMultiplier, err = p.Percent(ctx, "Support multiplier (0-15%, Enter for 0)"); err != nil {
		return score.Components{}, err
	}
	if c.AccountMultiplier, err = p.Percent(ctx, "Account multiplier (0-15%, Enter for 0)"); err != nil {
		return score.Components{}, err
	}

	return c, nil
}

// Select prints the menu and loops until the user picks a known key.
// Matching is case-insensitive.
func (p *Prompter) Select(ctx context.Context, title, prompt string, options []Option) (int, error) {
	fmt.Fprintln(p.writer)
	fmt.Fprintln(p.writer, TitleStyle.UnsetMargins().Render(title))
	for _, opt := range options {
		fmt.Fprintf(p.writer, "  %s (%2d pts): %s\n", BoldStyle.Render(opt.Key), opt.Score, opt.Description)
	}

	for {
		answer, err := p.read(ctx, prompt)
		if err != nil {
			return 0, err
		}
		for _, opt := range options {
			if strings.EqualFold(answer, opt.Key) {
				fmt.Fprintln(p.writer, FormatSuccess(fmt.Sprintf("Selected: %s = %d points", opt.Key, opt.Score)))
				return opt.Score, nil
			}
		}
		fmt.Fprintln(p.writer, FormatWarning("Invalid choice, try again"))
	}
}

// Percent asks for a whole-number percentage between 0 and 15 and returns
// it as a fraction. An empty answer means 0.
func (p *Prompter) Percent(ctx context.Context, prompt string) (float64, error) {
	for {
		answer, err := p.read(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 0, nil
		}
		answer = strings.TrimSuffix(answer, "%")
		value, err := strconv.ParseFloat(answer, 64)
		if err != nil || value < 0 || value > 15 {
			fmt.Fprintln(p.writer, FormatWarning("Enter a percentage between 0 and 15"))
			continue
		}
		return value / 100, nil
	}
}

// Text asks a free-form question and returns the trimmed answer.
func (p *Prompter) Text(ctx context.Context, prompt string) (string, error) {
	return p.read(ctx, prompt)
}

func (p *Prompter) read(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.writer, "\n"+FormatPrompt(prompt)+" ")
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
