package parse

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

// Column-name candidates for single-ticket Jira Excel exports. Matching is
// case-insensitive contains, so "Custom field (Severity)" still resolves.
var xlsxFieldColumns = map[string][]string{
	"key":         {"issue key", "key", "jira"},
	"summary":     {"summary", "title"},
	"description": {"description"},
	"priority":    {"priority"},
	"severity":    {"severity"},
	"customer":    {"customer", "account", "organization"},
	"workaround":  {"workaround"},
	"rca":         {"rca", "root cause"},
	"labels":      {"labels"},
}

// XLSX parses a single-ticket Jira Excel export: one header row, one data
// row, field columns found by name.
func XLSX(path string) (ticket.Fields, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: %v", common.ErrParseFailure, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ticket.Fields{}, fmt.Errorf("%w: workbook has no sheets", common.ErrParseFailure)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: reading sheet %s: %v", common.ErrParseFailure, sheets[0], err)
	}
	if len(rows) < 2 {
		return ticket.Fields{}, fmt.Errorf("%w: sheet %s has no data rows", common.ErrParseFailure, sheets[0])
	}

	header := rows[0]
	data := rows[1]

	get := func(field string) string {
		idx := FindColumn(header, xlsxFieldColumns[field])
		if idx < 0 || idx >= len(data) {
			return ""
		}
		return strings.TrimSpace(data[idx])
	}

	return ticket.Fields{
		Source:       SourceJira,
		Key:          get("key"),
		Summary:      get("summary"),
		Description:  get("description"),
		Priority:     get("priority"),
		Severity:     get("severity"),
		CustomerName: get("customer"),
		Workaround:   get("workaround"),
		RCA:          get("rca"),
		Labels:       splitList(get("labels")),
	}, nil
}

// FindColumn returns the index of the first header cell containing any of
// the candidate names, case-insensitively, or -1. Shared with the batch
// processor, whose exports use multi-line headers like
// "Impact & Severity\nMax 38".
func FindColumn(header []string, candidates []string) int {
	for i, cell := range header {
		lower := strings.ToLower(cell)
		for _, candidate := range candidates {
			if strings.Contains(lower, candidate) {
				return i
			}
		}
	}
	return -1
}
