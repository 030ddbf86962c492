package score

// Tier is the priority classification derived from a final score.
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierHigh     Tier = "HIGH"
	TierMedium   Tier = "MEDIUM"
	TierLow      Tier = "LOW"
	TierMinimal  Tier = "MINIMAL"
)

// Classify maps a final score to its tier. Thresholds are closed on the
// lower bound, so a score of exactly 90 is CRITICAL, exactly 70 is HIGH,
// and so on down.
func Classify(finalScore float64) Tier {
	switch {
	case finalScore >= 90:
		return TierCritical
	case finalScore >= 70:
		return TierHigh
	case finalScore >= 50:
		return TierMedium
	case finalScore >= 30:
		return TierLow
	default:
		return TierMinimal
	}
}
