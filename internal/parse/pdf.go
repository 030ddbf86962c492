package parse

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

// PDF extracts the plain text of a PDF export and parses it with the
// shared field regexes. Both Jira and Zendesk PDFs are handled; the
// source is detected from the text.
func PDF(path string) (ticket.Fields, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: %v", common.ErrParseFailure, err)
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: extracting PDF text: %v", common.ErrParseFailure, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: reading PDF text: %v", common.ErrParseFailure, err)
	}

	return fieldsFromText(buf.String()), nil
}
