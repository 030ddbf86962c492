package batch

import (
	"fmt"
	"math"
)

// DefaultTolerance is the acceptable difference between a computed score
// and the one already recorded in the workbook.
const DefaultTolerance = 0.1

// Mismatch reports a row whose computed score disagrees with the recorded
// one.
type Mismatch struct {
	JiraID     string
	Calculated float64
	Recorded   float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: calculated=%.1f, recorded=%.1f, diff=%.1f",
		m.JiraID, m.Calculated, m.Recorded, m.Calculated-m.Recorded)
}

// Validate compares computed scores against the workbook's existing score
// column. Rows without a recorded score are skipped.
func Validate(rows []Row, tolerance float64) []Mismatch {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var mismatches []Mismatch
	for _, r := range rows {
		if r.ExistingScore == nil || r.Err != nil {
			continue
		}
		if math.Abs(r.Result.FinalScore-*r.ExistingScore) > tolerance {
			mismatches = append(mismatches, Mismatch{
				JiraID:     r.JiraID,
				Calculated: r.Result.FinalScore,
				Recorded:   *r.ExistingScore,
			})
		}
	}
	return mismatches
}
