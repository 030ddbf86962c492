package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supportops/triage/internal/labels"
	"github.com/supportops/triage/internal/parse"
)

func labelsCmd() *cobra.Command {
	var (
		file          string
		summary       string
		description   string
		customer      string
		maxLabels     int
		includeSource bool
	)

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Extract categorization labels from ticket text",
		Long: `Extract up to --max short labels from a ticket: the customer tag plus
matches against the technical keyword list. Input is either --file or
the --summary/--description/--customer flags.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			source := ""
			if file != "" {
				fields, err := parse.File(file)
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", file, err)
				}
				summary = fields.Summary
				description = fields.Description
				customer = fields.CustomerName
				source = fields.Source
			}
			if !includeSource {
				source = ""
			}

			extracted := labels.New(nil).Extract(summary, description, customer, source, maxLabels)
			if len(extracted) == 0 {
				fmt.Println("(no labels)")
				return nil
			}
			fmt.Println(strings.Join(extracted, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "ticket export to parse")
	cmd.Flags().StringVar(&summary, "summary", "", "ticket summary text")
	cmd.Flags().StringVar(&description, "description", "", "ticket description text")
	cmd.Flags().StringVar(&customer, "customer", "", "explicit customer name")
	cmd.Flags().IntVar(&maxLabels, "max", labels.DefaultMaxLabels, "maximum number of labels")
	cmd.Flags().BoolVar(&includeSource, "include-source", false, "prepend the export source (jira/zendesk) as a label")

	return cmd
}
