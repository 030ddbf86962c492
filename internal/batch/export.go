package batch

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{
	"Jira", "Person",
	"Impact & Severity", "Customer ARR", "SLA Breach",
	"Frequency", "Workaround", "RCA Action Item",
	"Support Multiplier", "Account Multiplier",
	"Base Score", "Impact Score", "Priority",
}

// Export writes the scored rows to a new workbook, highest score first.
func Export(rows []Row, path string) error {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	SortByScore(sorted)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)

	if err := writeRow(f, sheet, 1, toCells(exportHeader)); err != nil {
		return err
	}
	for i, r := range sorted {
		c := r.Components
		cells := []any{
			r.JiraID, r.Person,
			c.ImpactSeverity, c.CustomerARR, c.SLABreach,
			c.Frequency, c.Workaround, c.RCAActionItem,
			c.SupportMultiplier, c.AccountMultiplier,
			r.Result.BaseScore, r.Result.FinalScore, string(r.Result.Priority),
		}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []any) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
