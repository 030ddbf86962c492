package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/config"
	"github.com/supportops/triage/internal/estimate"
	"github.com/supportops/triage/internal/labels"
	"github.com/supportops/triage/internal/llm"
	"github.com/supportops/triage/internal/report"
	"github.com/supportops/triage/internal/score"
	"github.com/supportops/triage/internal/ticket"
)

// loadRuleSet returns the estimation rules: the built-in tables unless a
// rules file is configured.
func loadRuleSet() (estimate.RuleSet, error) {
	path := viper.GetString("rules_file")
	if path == "" {
		return estimate.DefaultRules(), nil
	}
	rules, err := estimate.LoadRules(config.ExpandPath(path))
	if err != nil {
		return estimate.RuleSet{}, fmt.Errorf("failed to load rules: %w", err)
	}
	return rules, nil
}

// newLLMClient builds the summarization client from config. The API key
// is read from the environment variable named by llm.api_key_env.
func newLLMClient() (llm.Client, error) {
	keyEnv := viper.GetString("llm.api_key_env")
	if keyEnv == "" {
		keyEnv = "ANTHROPIC_API_KEY"
	}
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, common.NewUserError(
			fmt.Sprintf("No API key found. Set $%s or configure llm.api_key_env.", keyEnv),
			common.ErrMissingConfig)
	}

	return llm.NewClient(llm.Config{
		Provider:        viper.GetString("llm.provider"),
		Model:           viper.GetString("llm.model"),
		APIKey:          apiKey,
		RateLimitPerMin: viper.GetInt("llm.rate_limit_per_minute"),
	})
}

// evaluate runs the heuristic pipeline over one ticket: estimate the six
// components, score them, and extract labels.
func evaluate(fields ticket.Fields, rules estimate.RuleSet) (report.Report, error) {
	estimator := estimate.New(rules)
	estimates := estimator.All(fields)

	result, err := score.Compute(estimates.Components())
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to score ticket %s: %w", fields.Key, err)
	}

	extracted := labels.New(nil).Extract(
		fields.Summary, fields.Description, fields.CustomerName, fields.Source, 0)

	return report.Report{
		Fields:    fields,
		Estimates: &estimates,
		Result:    result,
		Labels:    extracted,
	}, nil
}

// render writes the report in the requested format to stdout or, when
// output is non-empty, to a file.
func render(r report.Report, format, output string) error {
	renderer, err := report.ForFormat(format)
	if err != nil {
		return err
	}

	if output == "" {
		return renderer.Render(os.Stdout, r)
	}

	f, err := os.Create(config.ExpandPath(output))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return renderer.Render(f, r)
}
