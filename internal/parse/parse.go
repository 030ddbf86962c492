// Package parse converts heterogeneous ticket exports (PDF, XLSX, DOCX,
// XML) into the normalized field record the estimator consumes. Parsers
// fill what they can find and leave the rest empty; only unreadable files
// produce errors.
package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

// File parses a ticket export, selecting the parser by file extension.
func File(path string) (ticket.Fields, error) {
	var parser func(string) (ticket.Fields, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		parser = PDF
	case ".xlsx":
		parser = XLSX
	case ".xml":
		parser = XML
	case ".docx":
		parser = DOCX
	default:
		return ticket.Fields{}, fmt.Errorf("%w: %s", common.ErrUnsupportedFormat, filepath.Ext(path))
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ticket.Fields{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return ticket.Fields{}, fmt.Errorf("failed to access %s: %w", path, err)
	}
	return parser(path)
}
