package batch

import (
	"sort"

	"github.com/supportops/triage/internal/score"
)

// Summary aggregates one batch run.
type Summary struct {
	TotalTickets  int
	ErrorRows     int
	AverageScore  float64
	MedianScore   float64
	MinScore      float64
	MaxScore      float64
	Distribution  map[score.Tier]int
	TicketsByTier map[score.Tier][]string
}

// Tiers lists the priority tiers hottest first, for stable report output.
var Tiers = []score.Tier{
	score.TierCritical,
	score.TierHigh,
	score.TierMedium,
	score.TierLow,
	score.TierMinimal,
}

// Stats computes summary statistics over scored rows.
func Stats(rows []Row) Summary {
	s := Summary{
		TotalTickets:  len(rows),
		Distribution:  make(map[score.Tier]int),
		TicketsByTier: make(map[score.Tier][]string),
	}
	if len(rows) == 0 {
		return s
	}

	scores := make([]float64, 0, len(rows))
	var sum float64
	for _, r := range rows {
		if r.Err != nil {
			s.ErrorRows++
		}
		v := r.Result.FinalScore
		scores = append(scores, v)
		sum += v
		s.Distribution[r.Result.Priority]++
		s.TicketsByTier[r.Result.Priority] = append(s.TicketsByTier[r.Result.Priority], r.JiraID)
	}

	sort.Float64s(scores)
	s.MinScore = scores[0]
	s.MaxScore = scores[len(scores)-1]
	s.AverageScore = sum / float64(len(scores))
	s.MedianScore = median(scores)
	return s
}

// median expects a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
