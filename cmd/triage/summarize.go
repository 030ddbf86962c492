package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/supportops/triage/internal/cli"
	"github.com/supportops/triage/internal/llm"
	"github.com/supportops/triage/internal/ticket"
)

func summarizeCmd() *cobra.Command {
	var (
		customer string
		product  string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "summarize <ticket-file>...",
		Short: "Generate an AI incident summary for ticket exports",
		Long: `Parse each ticket export and ask the configured AI provider for a
one-line technical summary plus a structured incident description.
Requires an API key in the environment (see llm.api_key_env).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLLMClient()
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				out = f
				defer func() { _ = f.Close() }()
			}

			for i, path := range args {
				fields, err := parseTicketFile(path)
				if err != nil {
					return err
				}

				resp, err := summarizeTicket(cmd, client, fields, customer, product)
				if err != nil {
					return err
				}

				if i > 0 {
					fmt.Fprintln(out, "\n---")
				}
				fmt.Fprintln(out, cli.BoldStyle.Render("SUMMARY: ")+resp.Summary)
				fmt.Fprintln(out)
				fmt.Fprintln(out, resp.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name override for the prompt")
	cmd.Flags().StringVar(&product, "product", "", "product name for the prompt")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

// summarizeTicket builds the conversation text from the parsed fields and
// calls the model.
func summarizeTicket(cmd *cobra.Command, client llm.Client, fields ticket.Fields, customer, product string) (llm.SummaryResponse, error) {
	if customer == "" {
		customer = fields.CustomerName
	}

	conversation := fields.Description
	if fields.Summary != "" {
		conversation = fields.Summary + "\n\n" + conversation
	}

	resp, err := client.Summarize(cmd.Context(), llm.SummaryRequest{
		TicketID:     fields.Key,
		Customer:     customer,
		Product:      product,
		Conversation: conversation,
	})
	if err != nil {
		return llm.SummaryResponse{}, fmt.Errorf("failed to summarize ticket %s: %w", fields.Key, err)
	}
	return resp, nil
}
