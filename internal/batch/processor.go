// Package batch scores whole spreadsheets of tickets: one row per ticket,
// component values in named columns, output sorted by final score. A bad
// row is logged and scored zero; it never stops the rest of the file.
package batch

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/parse"
	"github.com/supportops/triage/internal/score"
)

// DefaultSheet is the worksheet tickets are read from unless overridden.
const DefaultSheet = "Calculation"

// Column-name candidates per component, matched case-insensitively as
// substrings so the multi-line headers of the scoring workbook ("Impact &
// Severity\nMax 38") resolve alongside terse variants.
var columnCandidates = map[string][]string{
	"jira":               {"jira", "issue key", "key"},
	"person":             {"person", "assignee", "owner"},
	"impact_severity":    {"impact & severity", "severity", "impact"},
	"customer_arr":       {"customer arr", "arr"},
	"sla_breach":         {"sla breach", "sla"},
	"frequency":          {"frequency", "freq"},
	"workaround":         {"workaround"},
	"rca_action_item":    {"rca action item", "rca"},
	"support_multiplier": {"support multiplier", "cloudops multiplier"},
	"account_multiplier": {"account multiplier", "tam multiplier"},
	"existing_score":     {"final score", "impact score", "score"},
}

// Row is one ticket loaded from the spreadsheet.
type Row struct {
	Index         int
	JiraID        string
	Person        string
	Components    score.Components
	ExistingScore *float64
	Result        score.Result
	Err           error
}

// Load reads the given sheet into rows. Empty and null-like cells read as
// zero; non-numeric cells are warned about and read as zero too, matching
// how a half-filled scoring workbook is expected to behave.
func Load(path, sheet string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = DefaultSheet
	}
	rawRows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rawRows) < 2 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", common.ErrNoTickets, sheet)
	}

	header := rawRows[0]
	columns := make(map[string]int, len(columnCandidates))
	for name, candidates := range columnCandidates {
		columns[name] = parse.FindColumn(header, candidates)
	}

	rows := make([]Row, 0, len(rawRows)-1)
	for i, raw := range rawRows[1:] {
		cell := func(name string) string {
			idx := columns[name]
			if idx < 0 || idx >= len(raw) {
				return ""
			}
			return strings.TrimSpace(raw[idx])
		}

		row := Row{
			Index:  i + 2, // 1-based sheet row, after the header
			JiraID: cell("jira"),
			Person: cell("person"),
			Components: score.Components{
				ImpactSeverity:    cellInt(cell("impact_severity"), rowRef(i), "impact_severity"),
				CustomerARR:       cellInt(cell("customer_arr"), rowRef(i), "customer_arr"),
				SLABreach:         cellInt(cell("sla_breach"), rowRef(i), "sla_breach"),
				Frequency:         cellInt(cell("frequency"), rowRef(i), "frequency"),
				Workaround:        cellInt(cell("workaround"), rowRef(i), "workaround"),
				RCAActionItem:     cellInt(cell("rca_action_item"), rowRef(i), "rca_action_item"),
				SupportMultiplier: cellFloat(cell("support_multiplier"), rowRef(i), "support_multiplier"),
				AccountMultiplier: cellFloat(cell("account_multiplier"), rowRef(i), "account_multiplier"),
			},
		}
		if existing := cell("existing_score"); existing != "" {
			if v, err := strconv.ParseFloat(existing, 64); err == nil {
				row.ExistingScore = &v
			}
		}
		rows = append(rows, row)
	}

	slog.Info("Loaded tickets from workbook", "path", path, "sheet", sheet, "tickets", len(rows))
	return rows, nil
}

// ScoreAll computes the result for every row. Validation failures mark the
// row, leave it scored zero, and never interrupt the batch. onRow, when
// non-nil, is called once per processed row (progress reporting).
func ScoreAll(rows []Row, onRow func()) {
	for i := range rows {
		result, err := score.Compute(rows[i].Components)
		if err != nil {
			slog.Warn("Skipping invalid row",
				"row", rows[i].Index,
				"jira", rows[i].JiraID,
				"error", err)
			rows[i].Err = err
			rows[i].Result = score.Result{Priority: score.Classify(0)}
		} else {
			rows[i].Result = result
		}
		if onRow != nil {
			onRow()
		}
	}
}

// SortByScore orders rows by final score, highest first. Rows with errors
// sink to the bottom.
func SortByScore(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Result.FinalScore > rows[j].Result.FinalScore
	})
}

// Top returns the n highest-scoring rows without reordering the input.
func Top(rows []Row, n int) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	SortByScore(sorted)
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// FilterByTier returns the rows whose priority matches the given tier.
func FilterByTier(rows []Row, tier score.Tier) []Row {
	var out []Row
	for _, r := range rows {
		if r.Result.Priority == tier {
			out = append(out, r)
		}
	}
	return out
}

func cellInt(value string, rowID, field string) int {
	if isEmptyCell(value) {
		return 0
	}
	// Accept "8.0" style numerics the way a spreadsheet stores them.
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.Warn("Non-numeric cell read as zero", "row", rowID, "field", field, "value", value)
		return 0
	}
	return int(f)
}

func cellFloat(value string, rowID, field string) float64 {
	if isEmptyCell(value) {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
	if err != nil {
		slog.Warn("Non-numeric cell read as zero", "row", rowID, "field", field, "value", value)
		return 0
	}
	return f
}

func isEmptyCell(value string) bool {
	switch strings.ToLower(value) {
	case "", "nan", "n/a", "-":
		return true
	}
	return false
}

func rowRef(i int) string {
	return strconv.Itoa(i + 2)
}
