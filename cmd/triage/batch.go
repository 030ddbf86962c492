package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/supportops/triage/internal/batch"
	"github.com/supportops/triage/internal/cli"
	"github.com/supportops/triage/internal/score"
)

func batchCmd() *cobra.Command {
	var (
		sheet     string
		output    string
		top       int
		priority  string
		validate  bool
		statsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "batch <workbook.xlsx>",
		Short: "Score a whole spreadsheet of tickets",
		Long: `Read component values from a scoring workbook (one row per ticket),
calculate every impact score, and print summary statistics. Rows with
out-of-range values are reported and scored zero; the rest of the file
is still processed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sheet == "" {
				sheet = viper.GetString("batch.sheet")
			}

			rows, err := batch.Load(args[0], sheet)
			if err != nil {
				return err
			}

			bar := newProgressBar(len(rows))
			batch.ScoreAll(rows, func() { _ = bar.Add(1) })
			fmt.Println()

			summary := batch.Stats(rows)
			printStats(summary)

			if validate {
				tolerance := viper.GetFloat64("batch.score_tolerance")
				mismatches := batch.Validate(rows, tolerance)
				if len(mismatches) == 0 {
					fmt.Println(cli.FormatSuccess("All recorded scores match the calculation"))
				} else {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("%d score(s) disagree with the workbook:", len(mismatches))))
					for _, m := range mismatches {
						fmt.Println("  " + m.String())
					}
				}
			}

			if !statsOnly {
				selected := rows
				if priority != "" && !strings.EqualFold(priority, "all") {
					selected = batch.FilterByTier(rows, score.Tier(strings.ToUpper(priority)))
				}
				printTop(selected, top)
			}

			if output != "" {
				if err := batch.Export(rows, output); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess("Results exported to " + output))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", fmt.Sprintf("worksheet to read (default %q)", batch.DefaultSheet))
	cmd.Flags().StringVarP(&output, "output", "o", "", "export scored workbook to this path")
	cmd.Flags().IntVar(&top, "top", 10, "number of top tickets to list")
	cmd.Flags().StringVar(&priority, "priority", "", "only list tickets in this tier (CRITICAL, HIGH, ... or ALL)")
	cmd.Flags().BoolVar(&validate, "validate", false, "compare calculated scores against the workbook's score column")
	cmd.Flags().BoolVar(&statsOnly, "stats-only", false, "print statistics without the ticket list")

	return cmd
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Scoring tickets...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func printStats(s batch.Summary) {
	fmt.Println(cli.FormatTitle("Batch Summary"))
	fmt.Printf("  Tickets:  %d\n", s.TotalTickets)
	if s.ErrorRows > 0 {
		fmt.Println("  " + cli.FormatWarning(fmt.Sprintf("%d row(s) had invalid components and were scored 0", s.ErrorRows)))
	}
	fmt.Printf("  Average:  %.1f\n", s.AverageScore)
	fmt.Printf("  Median:   %.1f\n", s.MedianScore)
	fmt.Printf("  Range:    %.1f - %.1f\n", s.MinScore, s.MaxScore)
	fmt.Println("  Priorities:")
	for _, tier := range batch.Tiers {
		if count := s.Distribution[tier]; count > 0 {
			fmt.Printf("    %-8s %d\n", cli.FormatTier(tier), count)
		}
	}
}

func printTop(rows []batch.Row, n int) {
	if len(rows) == 0 {
		fmt.Println(cli.SubtleStyle.Render("  (no tickets matched)"))
		return
	}

	fmt.Println()
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Top %d Tickets", n)))
	for i, r := range batch.Top(rows, n) {
		id := r.JiraID
		if id == "" {
			id = fmt.Sprintf("row %d", r.Index)
		}
		fmt.Printf("  %2d. %-12s %s  %s\n",
			i+1, id, cli.FormatScore(r.Result.FinalScore), cli.FormatTier(r.Result.Priority))
	}
}
