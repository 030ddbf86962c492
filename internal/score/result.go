package score

// Result is the scored outcome for one ticket.
type Result struct {
	Components Components `json:"components"`
	BaseScore  int        `json:"base_score"`
	FinalScore float64    `json:"final_score"`
	Priority   Tier       `json:"priority"`
}

// Compute validates the components and derives base score, final score,
// and priority tier in one pass. Scoring never proceeds on invalid input.
func Compute(c Components) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	final := c.FinalScore()
	return Result{
		Components: c,
		BaseScore:  c.BaseScore(),
		FinalScore: final,
		Priority:   Classify(final),
	}, nil
}
