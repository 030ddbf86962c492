package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/supportops/triage/internal/parse"
	"github.com/supportops/triage/internal/report"
	"github.com/supportops/triage/internal/ticket"
)

func reportCmd() *cobra.Command {
	var (
		output    string
		summarize bool
		customer  string
		product   string
	)

	cmd := &cobra.Command{
		Use:   "report <ticket-file>",
		Short: "Generate a markdown incident report from a ticket export",
		Long: `Parse a ticket export, score it, and render a full markdown incident
report. With --summarize the report's narrative sections are filled in
by the configured AI provider; otherwise a skeleton is emitted for
manual completion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := loadRuleSet()
			if err != nil {
				return err
			}

			fields, err := parseTicketFile(args[0])
			if err != nil {
				return err
			}

			rep, err := evaluate(fields, rules)
			if err != nil {
				return err
			}

			if summarize {
				client, err := newLLMClient()
				if err != nil {
					return err
				}
				resp, err := summarizeTicket(cmd, client, fields, customer, product)
				if err != nil {
					return err
				}
				rep.AISummary = resp.Summary
				rep.AIDescription = resp.Description
			}

			if output == "" {
				return report.MarkdownRenderer{}.Render(cmd.OutOrStdout(), rep)
			}
			return render(rep, "markdown", output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&summarize, "summarize", false, "fill narrative sections using the AI provider")
	cmd.Flags().StringVar(&customer, "customer", "", "customer name override for the AI prompt")
	cmd.Flags().StringVar(&product, "product", "", "product name for the AI prompt")

	return cmd
}

// parseTicketFile wraps parse errors with the offending path.
func parseTicketFile(path string) (ticket.Fields, error) {
	fields, err := parse.File(path)
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fields, nil
}
