// Package score implements the impact score model: six bounded integer
// components and two percentage multipliers aggregate into a base score,
// a multiplied final score, and a priority tier.
package score

import (
	"fmt"
	"math"

	"github.com/supportops/triage/internal/common"
)

// Component bounds.
const (
	MaxImpactSeverity = 38
	MaxCustomerARR    = 15
	MaxSLABreach      = 8
	MaxFrequency      = 16
	MaxWorkaround     = 15
	MaxRCAActionItem  = 8
	MaxMultiplier     = 0.15

	// MaxBaseScore is the ceiling of the unmultiplied sum (100).
	MaxBaseScore = MaxImpactSeverity + MaxCustomerARR + MaxSLABreach +
		MaxFrequency + MaxWorkaround + MaxRCAActionItem
)

// Components holds one ticket's scoring inputs. Construct it, validate it,
// then read the derived scores; values are never mutated or clamped.
type Components struct {
	ImpactSeverity    int     `json:"impact_severity"`
	CustomerARR       int     `json:"customer_arr"`
	SLABreach         int     `json:"sla_breach"`
	Frequency         int     `json:"frequency"`
	Workaround        int     `json:"workaround"`
	RCAActionItem     int     `json:"rca_action_item"`
	SupportMultiplier float64 `json:"support_multiplier"`
	AccountMultiplier float64 `json:"account_multiplier"`
}

// Validate checks every component against its declared bound. A violation
// is reported with the field name and the offending value so the caller
// can surface it; out-of-range input is never silently coerced.
func (c Components) Validate() error {
	if c.ImpactSeverity < 0 || c.ImpactSeverity > MaxImpactSeverity {
		return fmt.Errorf("%w: impact_severity must be 0-%d, got %d", common.ErrValidationFailed, MaxImpactSeverity, c.ImpactSeverity)
	}
	if c.CustomerARR < 0 || c.CustomerARR > MaxCustomerARR {
		return fmt.Errorf("%w: customer_arr must be 0-%d, got %d", common.ErrValidationFailed, MaxCustomerARR, c.CustomerARR)
	}
	if c.SLABreach != 0 && c.SLABreach != MaxSLABreach {
		return fmt.Errorf("%w: sla_breach must be 0 or %d, got %d", common.ErrValidationFailed, MaxSLABreach, c.SLABreach)
	}
	if c.Frequency < 0 || c.Frequency > MaxFrequency {
		return fmt.Errorf("%w: frequency must be 0-%d, got %d", common.ErrValidationFailed, MaxFrequency, c.Frequency)
	}
	if c.Workaround < 0 || c.Workaround > MaxWorkaround {
		return fmt.Errorf("%w: workaround must be 0-%d, got %d", common.ErrValidationFailed, MaxWorkaround, c.Workaround)
	}
	if c.RCAActionItem != 0 && c.RCAActionItem != MaxRCAActionItem {
		return fmt.Errorf("%w: rca_action_item must be 0 or %d, got %d", common.ErrValidationFailed, MaxRCAActionItem, c.RCAActionItem)
	}
	if c.SupportMultiplier < 0 || c.SupportMultiplier > MaxMultiplier {
		return fmt.Errorf("%w: support_multiplier must be 0.0-%.2f, got %g", common.ErrValidationFailed, MaxMultiplier, c.SupportMultiplier)
	}
	if c.AccountMultiplier < 0 || c.AccountMultiplier > MaxMultiplier {
		return fmt.Errorf("%w: account_multiplier must be 0.0-%.2f, got %g", common.ErrValidationFailed, MaxMultiplier, c.AccountMultiplier)
	}
	return nil
}

// BaseScore sums the six integer components. Range [0, 100].
func (c Components) BaseScore() int {
	return c.ImpactSeverity + c.CustomerARR + c.SLABreach +
		c.Frequency + c.Workaround + c.RCAActionItem
}

// FinalScore applies both multipliers to the base score and rounds the
// result to one decimal place, half away from zero.
func (c Components) FinalScore() float64 {
	raw := float64(c.BaseScore()) * (1 + c.SupportMultiplier + c.AccountMultiplier)
	return math.Round(raw*10) / 10
}
