package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supportops/triage/internal/parse"
	"github.com/supportops/triage/internal/report"
	"github.com/supportops/triage/internal/score"
)

func scoreCmd() *cobra.Command {
	var (
		file              string
		format            string
		output            string
		severity          int
		arr               int
		sla               int
		frequency         int
		workaround        int
		rca               int
		supportMultiplier float64
		accountMultiplier float64
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one ticket from explicit components or a parsed export",
		Long: `Calculate the impact score for a single ticket.

With --file, the ticket export is parsed and missing components are
estimated from the ticket text; any component flag you set explicitly
overrides the estimate. Without --file, all six component flags are
required. Multipliers are given as percentages (0-15).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := loadRuleSet()
			if err != nil {
				return err
			}

			var rep report.Report
			if file != "" {
				fields, err := parse.File(file)
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", file, err)
				}
				rep, err = evaluate(fields, rules)
				if err != nil {
					return err
				}
			}

			components := rep.Result.Components
			flagged := false
			override := func(name string, dst *int, value int) {
				if cmd.Flags().Changed(name) {
					*dst = value
					flagged = true
				}
			}
			override("severity", &components.ImpactSeverity, severity)
			override("arr", &components.CustomerARR, arr)
			override("sla", &components.SLABreach, sla)
			override("frequency", &components.Frequency, frequency)
			override("workaround", &components.Workaround, workaround)
			override("rca", &components.RCAActionItem, rca)
			if cmd.Flags().Changed("support-multiplier") {
				components.SupportMultiplier = supportMultiplier / 100
				flagged = true
			}
			if cmd.Flags().Changed("account-multiplier") {
				components.AccountMultiplier = accountMultiplier / 100
				flagged = true
			}

			if file == "" && !flagged {
				return fmt.Errorf("provide --file or explicit component flags (see --help)")
			}

			if flagged {
				result, err := score.Compute(components)
				if err != nil {
					return err
				}
				rep.Result = result
				if file == "" {
					// Pure flag input has no text evidence to explain.
					rep.Estimates = nil
				}
			}

			return render(rep, format, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "ticket export to parse (pdf, xlsx, xml, docx)")
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json, markdown)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().IntVar(&severity, "severity", 0, "impact & severity (0-38)")
	cmd.Flags().IntVar(&arr, "arr", 0, "customer ARR (0-15)")
	cmd.Flags().IntVar(&sla, "sla", 0, "SLA breach (0 or 8)")
	cmd.Flags().IntVar(&frequency, "frequency", 0, "frequency (0-16)")
	cmd.Flags().IntVar(&workaround, "workaround", 0, "workaround (0-15)")
	cmd.Flags().IntVar(&rca, "rca", 0, "RCA action item (0 or 8)")
	cmd.Flags().Float64Var(&supportMultiplier, "support-multiplier", 0, "support multiplier in percent (0-15)")
	cmd.Flags().Float64Var(&accountMultiplier, "account-multiplier", 0, "account multiplier in percent (0-15)")

	return cmd
}
