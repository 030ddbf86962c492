package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supportops/triage/internal/score"
)

func TestSelectAcceptsCaseInsensitiveKey(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("p2\n"), &out)

	got, err := p.Select(context.Background(), "IMPACT", "Select", SeverityOptions())
	require.NoError(t, err)
	assert.Equal(t, 30, got)
	assert.Contains(t, out.String(), "P1")
	assert.Contains(t, out.String(), "Selected")
}

func TestSelectRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("7\nbogus\n3\n"), &out)

	got, err := p.Select(context.Background(), "FREQUENCY", "Select", FrequencyOptions())
	require.NoError(t, err)
	assert.Equal(t, 16, got)
	assert.Contains(t, out.String(), "Invalid choice")
}

func TestSelectFailsOnExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, err := p.Select(context.Background(), "SLA", "Select", SLAOptions())
	assert.Error(t, err)
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "empty answer means zero", input: "\n", want: 0},
		{name: "plain number", input: "10\n", want: 0.10},
		{name: "percent sign stripped", input: "15%\n", want: 0.15},
		{name: "out of range then valid", input: "20\n5\n", want: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)
			got, err := p.Percent(context.Background(), "Support multiplier")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPromptComponentsFullFlow(t *testing.T) {
	// P2, ARR band 1, SLA no, 2-4 occurrences, complex workaround, RCA
	// yes, both multipliers left empty.
	input := "P2\n1\nN\n2\n2\nY\n\n\n"
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(input), &out)

	c, err := p.PromptComponents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, score.Components{
		ImpactSeverity: 30,
		CustomerARR:    15,
		SLABreach:      0,
		Frequency:      8,
		Workaround:     10,
		RCAActionItem:  8,
	}, c)
	require.NoError(t, c.Validate())
	assert.Equal(t, 71, c.BaseScore())
}

func TestPromptComponentsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("P1\n"), &bytes.Buffer{})
	_, err := p.PromptComponents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatTierKnownAndUnknown(t *testing.T) {
	assert.NotEmpty(t, FormatTier(score.TierCritical))
	assert.NotEmpty(t, FormatTier(score.Tier("MYSTERY")))
}
