package estimate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/supportops/triage/internal/score"
	"github.com/supportops/triage/internal/ticket"
)

// Estimate pairs a component score with the reason the cascade chose it.
type Estimate struct {
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Estimates holds the six cascade results for one ticket.
type Estimates struct {
	ImpactSeverity Estimate `json:"impact_severity"`
	CustomerARR    Estimate `json:"customer_arr"`
	SLABreach      Estimate `json:"sla_breach"`
	Frequency      Estimate `json:"frequency"`
	Workaround     Estimate `json:"workaround"`
	RCAActionItem  Estimate `json:"rca_action_item"`
}

// Components lifts the estimated scores into score.Components. Multipliers
// are never estimated from text; they stay at zero unless a human supplies
// them.
func (s Estimates) Components() score.Components {
	return score.Components{
		ImpactSeverity: s.ImpactSeverity.Score,
		CustomerARR:    s.CustomerARR.Score,
		SLABreach:      s.SLABreach.Score,
		Frequency:      s.Frequency.Score,
		Workaround:     s.Workaround.Score,
		RCAActionItem:  s.RCAActionItem.Score,
	}
}

// Reasoning collects the six reason strings under the component names used
// in serialized reports.
type Reasoning struct {
	ImpactSeverity string `json:"impact_severity"`
	CustomerARR    string `json:"customer_arr"`
	SLABreach      string `json:"sla_breach"`
	Frequency      string `json:"frequency"`
	Workaround     string `json:"workaround"`
	RCAActionItem  string `json:"rca_action_item"`
}

// Reasoning extracts the reason strings from the estimates.
func (s Estimates) Reasoning() Reasoning {
	return Reasoning{
		ImpactSeverity: s.ImpactSeverity.Reason,
		CustomerARR:    s.CustomerARR.Reason,
		SLABreach:      s.SLABreach.Reason,
		Frequency:      s.Frequency.Reason,
		Workaround:     s.Workaround.Reason,
		RCAActionItem:  s.RCAActionItem.Reason,
	}
}

// Estimator runs the rule cascades. It holds only read-only rule tables
// and precompiled patterns, so a single instance is safe to reuse across
// tickets.
type Estimator struct {
	rules RuleSet

	countRe     *regexp.Regexp
	durationRe  *regexp.Regexp
	ticketRefRe *regexp.Regexp
}

// New returns an Estimator driven by the given rule set.
func New(rules RuleSet) *Estimator {
	return &Estimator{
		rules:       rules,
		countRe:     regexp.MustCompile(`(\d+)\s*(?:times|occurrences)`),
		durationRe:  regexp.MustCompile(`\d+\s*(?:hour|hr|minute|min).*down`),
		ticketRefRe: regexp.MustCompile(`\b[a-z]{2,}-\d+\b`),
	}
}

// ruleFunc is one step of a cascade: it either produces an estimate or
// passes to the next rule.
type ruleFunc func() (Estimate, bool)

func firstMatch(rules []ruleFunc, fallback Estimate) Estimate {
	for _, rule := range rules {
		if est, ok := rule(); ok {
			return est
		}
	}
	return fallback
}

// All runs every cascade against the ticket.
func (e *Estimator) All(t ticket.Fields) Estimates {
	return Estimates{
		ImpactSeverity: e.ImpactSeverity(t),
		CustomerARR:    e.CustomerARR(t),
		SLABreach:      e.SLABreach(t),
		Frequency:      e.Frequency(t),
		Workaround:     e.Workaround(t),
		RCAActionItem:  e.RCAActionItem(t),
	}
}

// ImpactSeverity scores service impact from the priority field, the
// severity field, and description keywords, in that order. Tickets that
// only concern monitoring or reporting while the service itself is fine
// are pinned at the P4 level (16 points).
func (e *Estimator) ImpactSeverity(t ticket.Fields) Estimate {
	text := ticket.Combined(t.Description, t.Summary)
	monitoring := containsAny(text, e.rules.Severity.MonitoringIndicators)
	serviceOK := containsAny(text, e.rules.Severity.ServiceOKIndicators)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			if monitoring && serviceOK {
				return Estimate{Score: 16, Reason: "Monitoring/metrics issue with service functioning normally (P4)"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			priority := strings.ToLower(t.Priority)
			points, ok := e.rules.Severity.PriorityScores[priority]
			if !ok {
				return Estimate{}, false
			}
			if monitoring && serviceOK && points > 16 {
				return Estimate{Score: 16, Reason: fmt.Sprintf("Priority '%s' indicates %d points, but adjusted to 16 for monitoring-only issue", priority, points)}, true
			}
			return Estimate{Score: points, Reason: fmt.Sprintf("Priority '%s' indicates %d points", priority, points)}, true
		},
		func() (Estimate, bool) {
			severity := strings.ToLower(t.Severity)
			for _, tok := range e.rules.Severity.Tokens {
				if !strings.Contains(severity, tok.Token) {
					continue
				}
				// A P4/low severity on a monitoring ticket stays at 16
				// even when the token maps higher.
				if (strings.Contains(tok.Token, "4") || strings.Contains(severity, "low")) && monitoring {
					return Estimate{Score: 16, Reason: fmt.Sprintf("Severity field '%s' maps to %d points (monitoring issue)", severity, tok.Score)}, true
				}
				return Estimate{Score: tok.Score, Reason: fmt.Sprintf("Severity field '%s' maps to %d points", severity, tok.Score)}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if !containsAny(text, e.rules.Severity.CriticalKeywords) {
				return Estimate{}, false
			}
			if serviceOK {
				return Estimate{Score: 16, Reason: "Critical keywords found but service is functioning (P4)"}, true
			}
			return Estimate{Score: 38, Reason: "Critical keywords found in description"}, true
		},
		func() (Estimate, bool) {
			if !containsAny(text, e.rules.Severity.PerformanceKeywords) {
				return Estimate{}, false
			}
			if monitoring && serviceOK {
				return Estimate{Score: 16, Reason: "Performance keywords found but service OK (monitoring issue, P4)"}, true
			}
			return Estimate{Score: 30, Reason: "Performance degradation keywords found"}, true
		},
		func() (Estimate, bool) {
			if !containsAny(text, e.rules.Severity.GeneralKeywords) {
				return Estimate{}, false
			}
			if monitoring && serviceOK {
				return Estimate{Score: 16, Reason: "Issue keywords found but monitoring-only (P4)"}, true
			}
			return Estimate{Score: 22, Reason: "General issue keywords found"}, true
		},
	}

	return firstMatch(rules, Estimate{Score: 22, Reason: "No clear severity indicators, defaulting to P3"})
}

// CustomerARR scores customer value from the customer name, the ticket
// text, and the labels.
func (e *Estimator) CustomerARR(t ticket.Fields) Estimate {
	customer := strings.ToLower(t.CustomerName)
	text := ticket.Combined(t.Description, t.Summary)
	labelText := ticket.LabelText(t.Labels)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			for _, vip := range e.rules.Customer.VIPCustomers {
				needle := strings.ToLower(vip)
				if strings.Contains(customer, needle) || strings.Contains(text, needle) {
					return Estimate{Score: 15, Reason: fmt.Sprintf("VIP customer '%s' identified", vip)}, true
				}
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(text, e.rules.Customer.MultiCustomerPhrases) {
				return Estimate{Score: 8, Reason: "Multiple customers mentioned"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(labelText, e.rules.Customer.PremiumLabels) {
				return Estimate{Score: 13, Reason: "Enterprise/Premium labels found"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(text, e.rules.Customer.StandardTiers) {
				return Estimate{Score: 10, Reason: "Standard subscription tier mentioned"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if customer != "" || strings.Contains(text, "customer") {
				return Estimate{Score: 10, Reason: "Customer mentioned but ARR unknown"}, true
			}
			return Estimate{}, false
		},
	}

	return firstMatch(rules, Estimate{Score: 0, Reason: "No customer information found, assuming single low ARR"})
}

// SLABreach scores SLA exposure. Explicit "no breach" statements win over
// everything that follows.
func (e *Estimator) SLABreach(t ticket.Fields) Estimate {
	text := ticket.Combined(t.Description, t.Summary, t.RCA)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			if containsAny(text, e.rules.SLA.NoBreachPhrases) {
				return Estimate{Score: 0, Reason: "No SLA breach (service confirmed stable/functional)"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			for _, kw := range e.rules.SLA.BreachKeywords {
				if strings.Contains(text, kw) {
					return Estimate{Score: 8, Reason: fmt.Sprintf("SLA breach keyword '%s' found", kw)}, true
				}
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			// A downtime duration counts only when the text before the
			// first "down" carries no negation.
			idx := strings.Index(text, "down")
			if idx < 0 {
				return Estimate{}, false
			}
			if e.durationRe.MatchString(text) && !strings.Contains(text[:idx], "no") {
				return Estimate{Score: 8, Reason: "Downtime duration mentioned, potential SLA impact"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			priority := strings.ToLower(t.Priority)
			for _, p := range e.rules.SLA.CriticalPriorities {
				if priority == p {
					return Estimate{Score: 8, Reason: "Critical priority suggests potential SLA breach"}, true
				}
			}
			return Estimate{}, false
		},
	}

	return firstMatch(rules, Estimate{Score: 0, Reason: "No SLA breach indicators found"})
}

// Frequency scores how often the issue recurs.
func (e *Estimator) Frequency(t ticket.Fields) Estimate {
	text := ticket.Combined(t.Description, t.Summary)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			m := e.countRe.FindStringSubmatch(text)
			if m == nil {
				return Estimate{}, false
			}
			count, err := strconv.Atoi(m[1])
			if err != nil {
				return Estimate{}, false
			}
			switch {
			case count > 4:
				return Estimate{Score: 16, Reason: fmt.Sprintf("%d occurrences mentioned", count)}, true
			case count >= 2:
				return Estimate{Score: 8, Reason: fmt.Sprintf("%d occurrences mentioned", count)}, true
			}
			// A count of 0 or 1 is not evidence either way.
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			for _, kw := range e.rules.Frequency.MultipleKeywords {
				if strings.Contains(text, kw) {
					return Estimate{Score: 16, Reason: fmt.Sprintf("Multiple occurrence keyword '%s' found", kw)}, true
				}
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			for _, kw := range e.rules.Frequency.SingleKeywords {
				if strings.Contains(text, kw) {
					return Estimate{Score: 0, Reason: fmt.Sprintf("Single occurrence keyword '%s' found", kw)}, true
				}
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(text, e.rules.Frequency.SimilarPhrases) || e.ticketRefRe.MatchString(text) {
				return Estimate{Score: 8, Reason: "References to similar issues found"}, true
			}
			return Estimate{}, false
		},
	}

	return firstMatch(rules, Estimate{Score: 0, Reason: "No clear frequency indicators, assuming single occurrence"})
}

// Workaround scores mitigation effort from the workaround field and the
// ticket text.
func (e *Estimator) Workaround(t ticket.Fields) Estimate {
	combined := ticket.Combined(t.Workaround, t.Description, t.Summary)
	fieldText := strings.ToLower(t.Workaround)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			if containsAny(combined, e.rules.Workaround.NoneKeywords) {
				return Estimate{Score: 15, Reason: "No workaround available, fix required"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(combined, e.rules.Workaround.FixKeywords) && !strings.Contains(combined, "workaround") {
				return Estimate{Score: 15, Reason: "Fix/patch required, no workaround"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if !containsAny(combined, e.rules.Workaround.AvailableKeywords) {
				return Estimate{}, false
			}
			switch {
			case containsAny(combined, e.rules.Workaround.ImpactKeywords):
				return Estimate{Score: 12, Reason: "Workaround with performance/operational impact detected"}, true
			case containsAny(combined, e.rules.Workaround.ComplexKeywords):
				return Estimate{Score: 10, Reason: "Complex workaround found"}, true
			}
			return Estimate{Score: 5, Reason: "Simple workaround found"}, true
		},
		func() (Estimate, bool) {
			if ticket.IsBlank(t.Workaround) {
				return Estimate{}, false
			}
			switch {
			case containsAny(fieldText, e.rules.Workaround.ImpactKeywords):
				return Estimate{Score: 12, Reason: "Workaround field shows performance/operational impact"}, true
			case containsAny(fieldText, e.rules.Workaround.ComplexKeywords):
				return Estimate{Score: 10, Reason: "Workaround field shows complex workaround"}, true
			}
			return Estimate{Score: 10, Reason: "Workaround field populated"}, true
		},
	}

	return firstMatch(rules, Estimate{Score: 10, Reason: "No clear workaround information, assuming complex workaround needed"})
}

// RCAActionItem scores whether the ticket carries root cause follow-up
// work.
func (e *Estimator) RCAActionItem(t ticket.Fields) Estimate {
	combined := ticket.Combined(t.RCA, t.Description, t.Summary)

	rules := []ruleFunc{
		func() (Estimate, bool) {
			if len(strings.TrimSpace(t.RCA)) > e.rules.RCA.MinLength {
				return Estimate{Score: 8, Reason: "RCA field contains substantial content"}, true
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			for _, kw := range e.rules.RCA.Keywords {
				if strings.Contains(combined, kw) {
					return Estimate{Score: 8, Reason: fmt.Sprintf("RCA keyword '%s' found", kw)}, true
				}
			}
			return Estimate{}, false
		},
		func() (Estimate, bool) {
			if containsAny(ticket.LabelText(t.Labels), e.rules.RCA.LabelHints) {
				return Estimate{Score: 8, Reason: "RCA label found"}, true
			}
			return Estimate{}, false
		},
	}

	return firstMatch(rules, Estimate{Score: 0, Reason: "No RCA indicators found"})
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
