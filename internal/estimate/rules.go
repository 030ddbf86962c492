// Package estimate derives impact score components from ticket text. Each
// component has its own rule cascade: an ordered list of predicates
// evaluated top to bottom where the first match wins. Cascades never fail;
// text with no matching evidence lands on a conservative default with an
// explanatory reason.
package estimate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/supportops/triage/internal/common"
)

// SeverityToken maps a severity-field substring to a score. Tokens are
// checked in order, so narrower tokens ("1 - critical") must come before
// wider ones they would otherwise shadow.
type SeverityToken struct {
	Token string `yaml:"token"`
	Score int    `yaml:"score"`
}

// SeverityRules drive the impact severity cascade.
type SeverityRules struct {
	PriorityScores       map[string]int  `yaml:"priority_scores"`
	Tokens               []SeverityToken `yaml:"tokens"`
	MonitoringIndicators []string        `yaml:"monitoring_indicators"`
	ServiceOKIndicators  []string        `yaml:"service_ok_indicators"`
	CriticalKeywords     []string        `yaml:"critical_keywords"`
	PerformanceKeywords  []string        `yaml:"performance_keywords"`
	GeneralKeywords      []string        `yaml:"general_keywords"`
}

// CustomerRules drive the customer ARR cascade.
type CustomerRules struct {
	VIPCustomers         []string `yaml:"vip_customers"`
	MultiCustomerPhrases []string `yaml:"multi_customer_phrases"`
	PremiumLabels        []string `yaml:"premium_labels"`
	StandardTiers        []string `yaml:"standard_tiers"`
}

// SLARules drive the SLA breach cascade.
type SLARules struct {
	NoBreachPhrases    []string `yaml:"no_breach_phrases"`
	BreachKeywords     []string `yaml:"breach_keywords"`
	CriticalPriorities []string `yaml:"critical_priorities"`
}

// FrequencyRules drive the frequency cascade.
type FrequencyRules struct {
	MultipleKeywords []string `yaml:"multiple_keywords"`
	SingleKeywords   []string `yaml:"single_keywords"`
	SimilarPhrases   []string `yaml:"similar_phrases"`
}

// WorkaroundRules drive the workaround cascade.
type WorkaroundRules struct {
	NoneKeywords      []string `yaml:"none_keywords"`
	FixKeywords       []string `yaml:"fix_keywords"`
	AvailableKeywords []string `yaml:"available_keywords"`
	ImpactKeywords    []string `yaml:"impact_keywords"`
	ComplexKeywords   []string `yaml:"complex_keywords"`
}

// RCARules drive the RCA action item cascade.
type RCARules struct {
	Keywords   []string `yaml:"keywords"`
	LabelHints []string `yaml:"label_hints"`
	MinLength  int      `yaml:"min_length"`
}

// RuleSet bundles the keyword tables behind all six cascades. The tables
// are data, not code: they are loaded once at startup and treated as
// read-only afterwards.
type RuleSet struct {
	Severity   SeverityRules   `yaml:"severity"`
	Customer   CustomerRules   `yaml:"customer"`
	SLA        SLARules        `yaml:"sla"`
	Frequency  FrequencyRules  `yaml:"frequency"`
	Workaround WorkaroundRules `yaml:"workaround"`
	RCA        RCARules        `yaml:"rca"`
}

// DefaultRules returns the built-in keyword tables.
func DefaultRules() RuleSet {
	return RuleSet{
		Severity: SeverityRules{
			PriorityScores: map[string]int{
				"blocker":  38,
				"critical": 38,
				"highest":  38,
				"high":     30,
				"medium":   22,
				"low":      16,
				"lowest":   8,
				"trivial":  8,
			},
			Tokens: []SeverityToken{
				{Token: "1 - critical", Score: 38},
				{Token: "1 - high", Score: 38},
				{Token: "sev 1", Score: 38},
				{Token: "p1", Score: 38},
				{Token: "2 - high", Score: 30},
				{Token: "2 - medium", Score: 30},
				{Token: "sev 2", Score: 30},
				{Token: "p2", Score: 30},
				{Token: "3 - medium", Score: 22},
				{Token: "3 - low", Score: 22},
				{Token: "sev 3", Score: 22},
				{Token: "p3", Score: 22},
				{Token: "4 - low", Score: 16},
				{Token: "p4", Score: 16},
				{Token: "5 - trivial", Score: 8},
				{Token: "p5", Score: 8},
			},
			MonitoringIndicators: []string{
				"metric", "metrics", "monitoring", "prometheus", "grafana",
				"alert", "alerting", "false alert", "reporting",
				"dashboard", "visualization", "observability",
			},
			ServiceOKIndicators: []string{
				"service is fine", "service working", "db is working",
				"fully functional", "no actual", "appears to be",
				"reporting issue", "calculation artifact", "metrics artifact",
			},
			CriticalKeywords:    []string{"critical", "down", "outage", "stopped", "crash", "data loss"},
			PerformanceKeywords: []string{"degraded", "slow", "performance"},
			GeneralKeywords:     []string{"error", "bug", "issue", "problem"},
		},
		Customer: CustomerRules{
			VIPCustomers: []string{
				"monday.com", "monday", "salesforce", "twilio", "stripe",
				"shopify", "zoom", "slack", "datadog", "hashicorp",
			},
			MultiCustomerPhrases: []string{"multiple customers", "several customers"},
			PremiumLabels:        []string{"enterprise", "premium"},
			StandardTiers:        []string{"essentials", "standard"},
		},
		SLA: SLARules{
			NoBreachPhrases: []string{
				"no sla breach", "no downtime", "no shard downtime",
				"no actual", "shards stable", "service is fine",
				"fully functional", "no service impact",
			},
			BreachKeywords:     []string{"sla breach", "sla violated", "exceeded sla", "manual recovery", "downtime"},
			CriticalPriorities: []string{"blocker", "critical", "highest"},
		},
		Frequency: FrequencyRules{
			MultipleKeywords: []string{"multiple", "several", "recurring", "repeated", "again", "reoccur"},
			SingleKeywords:   []string{"first time", "one time", "single", "once"},
			SimilarPhrases:   []string{"similar to", "same as"},
		},
		Workaround: WorkaroundRules{
			NoneKeywords:      []string{"no workaround", "cannot", "impossible", "requires fix", "needs patch"},
			FixKeywords:       []string{"fix", "patch", "requires version"},
			AvailableKeywords: []string{"workaround", "use instead", "alternative"},
			ImpactKeywords: []string{
				"performance", "slower", "degraded", "limited",
				"inconvenient", "operational overhead", "manual intervention",
				"hard-coded", "hardcoded", "manual update", "manually update",
				"reduced capability", "reduced effectiveness", "not as designed",
				"operational impact", "requires updating", "human error",
				"reduced confidence", "less effective", "workaround impact",
			},
			ComplexKeywords: []string{"manual", "multiple steps", "requires", "need to"},
		},
		RCA: RCARules{
			Keywords:   []string{"rca", "root cause", "action item", "post mortem", "postmortem"},
			LabelHints: []string{"rca", "postmortem"},
			MinLength:  50,
		},
	}
}

// LoadRules reads a YAML rules file and unmarshals it over the defaults.
// A file only needs to list the tables it changes; any table it names
// replaces the built-in one wholesale.
func LoadRules(path string) (RuleSet, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RuleSet{}, fmt.Errorf("%w: rules file %s: %v", common.ErrInvalidConfig, path, err)
	}
	return rules, nil
}
