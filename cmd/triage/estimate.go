package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supportops/triage/internal/cli"
	"github.com/supportops/triage/internal/report"
	"github.com/supportops/triage/internal/score"
	"github.com/supportops/triage/internal/ticket"
)

func estimateCmd() *cobra.Command {
	var (
		format  string
		output  string
		jiraID  string
		summary string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate an impact score interactively",
		Long: `Walk through the six scoring components one menu at a time, the same
way the scoring sheet is filled in by hand, then show the resulting
score and priority tier.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompter := cli.NewPrompter(os.Stdin, os.Stdout)

			fmt.Println(cli.FormatTitle("Impact Score Estimator"))

			if jiraID == "" {
				id, err := prompter.Text(cmd.Context(), "Ticket id (press Enter to skip):")
				if err != nil {
					return err
				}
				jiraID = id
			}

			components, err := prompter.PromptComponents(cmd.Context())
			if err != nil {
				return err
			}

			result, err := score.Compute(components)
			if err != nil {
				return err
			}

			rep := report.Report{
				Fields: ticket.Fields{Key: jiraID, Summary: summary},
				Result: result,
			}
			fmt.Println()
			return render(rep, format, output)
		},
	}

	cmd.Flags().StringVar(&jiraID, "jira", "", "ticket id to record in the output")
	cmd.Flags().StringVar(&summary, "summary", "", "ticket summary to record in the output")
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json, markdown)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}
