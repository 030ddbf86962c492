package score

import (
	"errors"
	"strings"
	"testing"

	"github.com/supportops/triage/internal/common"
)

func TestComponentsValidate(t *testing.T) {
	tests := []struct {
		name       string
		components Components
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "zero components valid",
			components: Components{},
		},
		{
			name: "all maximums valid",
			components: Components{
				ImpactSeverity:    38,
				CustomerARR:       15,
				SLABreach:         8,
				Frequency:         16,
				Workaround:        15,
				RCAActionItem:     8,
				SupportMultiplier: 0.15,
				AccountMultiplier: 0.15,
			},
		},
		{
			name:       "impact severity above bound",
			components: Components{ImpactSeverity: 39},
			wantErr:    true,
			errMsg:     "impact_severity must be 0-38, got 39",
		},
		{
			name:       "impact severity negative",
			components: Components{ImpactSeverity: -1},
			wantErr:    true,
			errMsg:     "impact_severity must be 0-38, got -1",
		},
		{
			name:       "customer arr above bound",
			components: Components{CustomerARR: 16},
			wantErr:    true,
			errMsg:     "customer_arr must be 0-15, got 16",
		},
		{
			name:       "sla breach intermediate value",
			components: Components{SLABreach: 4},
			wantErr:    true,
			errMsg:     "sla_breach must be 0 or 8, got 4",
		},
		{
			name:       "frequency above bound",
			components: Components{Frequency: 17},
			wantErr:    true,
			errMsg:     "frequency must be 0-16, got 17",
		},
		{
			name:       "workaround above bound",
			components: Components{Workaround: 16},
			wantErr:    true,
			errMsg:     "workaround must be 0-15, got 16",
		},
		{
			name:       "rca intermediate value",
			components: Components{RCAActionItem: 5},
			wantErr:    true,
			errMsg:     "rca_action_item must be 0 or 8, got 5",
		},
		{
			name:       "support multiplier above bound",
			components: Components{SupportMultiplier: 0.16},
			wantErr:    true,
			errMsg:     "support_multiplier must be 0.0-0.15, got 0.16",
		},
		{
			name:       "account multiplier negative",
			components: Components{AccountMultiplier: -0.01},
			wantErr:    true,
			errMsg:     "account_multiplier must be 0.0-0.15, got -0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.components.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if !errors.Is(err, common.ErrValidationFailed) {
					t.Errorf("Validate() error = %v, want ErrValidationFailed", err)
				}
				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestComponentsValidateSeveritySteps(t *testing.T) {
	// Every documented severity step is a legal value.
	for _, v := range []int{0, 8, 16, 22, 30, 38} {
		c := Components{ImpactSeverity: v}
		if err := c.Validate(); err != nil {
			t.Errorf("Validate() with impact_severity=%d: %v", v, err)
		}
	}
}

func TestBaseScore(t *testing.T) {
	tests := []struct {
		name       string
		components Components
		want       int
	}{
		{
			name: "typical mix",
			components: Components{
				ImpactSeverity: 30,
				CustomerARR:    15,
				Workaround:     10,
				RCAActionItem:  8,
			},
			want: 63,
		},
		{
			name: "all maximums",
			components: Components{
				ImpactSeverity: 38,
				CustomerARR:    15,
				SLABreach:      8,
				Frequency:      16,
				Workaround:     15,
				RCAActionItem:  8,
			},
			want: 100,
		},
		{
			name:       "all zero",
			components: Components{},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.components.BaseScore(); got != tt.want {
				t.Errorf("BaseScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxBaseScore(t *testing.T) {
	// 38+15+8+16+15+8.
	if MaxBaseScore != 100 {
		t.Fatalf("MaxBaseScore = %d, want 100", MaxBaseScore)
	}
	all := Components{
		ImpactSeverity:    38,
		CustomerARR:       15,
		SLABreach:         8,
		Frequency:         16,
		Workaround:        15,
		RCAActionItem:     8,
		SupportMultiplier: 0.15,
		AccountMultiplier: 0.15,
	}
	got, err := Compute(all)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if got.BaseScore != MaxBaseScore || got.FinalScore != 130.0 || got.Priority != TierCritical {
		t.Errorf("Compute() = %+v, want base 100, final 130.0, CRITICAL", got)
	}
}

func TestFinalScore(t *testing.T) {
	tests := []struct {
		name       string
		components Components
		want       float64
	}{
		{
			name: "no multipliers equals base",
			components: Components{
				ImpactSeverity: 30,
				CustomerARR:    15,
				Workaround:     10,
				RCAActionItem:  8,
			},
			want: 63.0,
		},
		{
			name: "both multipliers at maximum",
			components: Components{
				ImpactSeverity:    38,
				CustomerARR:       15,
				SLABreach:         8,
				Frequency:         16,
				Workaround:        15,
				RCAActionItem:     8,
				SupportMultiplier: 0.15,
				AccountMultiplier: 0.15,
			},
			want: 130.0,
		},
		{
			name: "quarter multipliers stay exact",
			components: Components{
				CustomerARR:       10,
				SupportMultiplier: 0.125,
				AccountMultiplier: 0.125,
			},
			want: 12.5,
		},
		{
			name: "one decimal place",
			components: Components{
				ImpactSeverity:    22,
				SupportMultiplier: 0.07,
			},
			want: 23.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.components.FinalScore(); got != tt.want {
				t.Errorf("FinalScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinalScoreHalfAwayFromZero(t *testing.T) {
	// 2 * (1 + 0.125) = 2.25: representable exactly, so this pins the
	// rounding mode rather than float noise.
	c := Components{Frequency: 2, SupportMultiplier: 0.125}
	if got := c.FinalScore(); got != 2.3 {
		t.Errorf("FinalScore() = %v, want 2.3", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{score: 130.0, want: TierCritical},
		{score: 90.0, want: TierCritical},
		{score: 89.9, want: TierHigh},
		{score: 70.0, want: TierHigh},
		{score: 69.9, want: TierMedium},
		{score: 50.0, want: TierMedium},
		{score: 49.9, want: TierLow},
		{score: 30.0, want: TierLow},
		{score: 29.9, want: TierMinimal},
		{score: 0.0, want: TierMinimal},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	c := Components{
		ImpactSeverity: 30,
		CustomerARR:    15,
		Workaround:     10,
		RCAActionItem:  8,
	}
	got, err := Compute(c)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	want := Result{Components: c, BaseScore: 63, FinalScore: 63.0, Priority: TierMedium}
	if got != want {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeRejectsInvalid(t *testing.T) {
	_, err := Compute(Components{SLABreach: 4})
	if err == nil {
		t.Fatal("Compute() expected validation error, got nil")
	}
	if !errors.Is(err, common.ErrValidationFailed) {
		t.Errorf("Compute() error = %v, want ErrValidationFailed", err)
	}
}
