package parse

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

// XML parses a Jira XML export by direct element lookup. Both bare
// exports (<issue><summary>…) and RSS-wrapped ones
// (<rss><channel><item>…) work, since lookup searches the whole tree.
func XML(path string) (ticket.Fields, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return ticket.Fields{}, fmt.Errorf("%w: %v", common.ErrParseFailure, err)
	}

	fields := ticket.Fields{
		Source:       SourceJira,
		Key:          elementText(doc, "key"),
		Summary:      elementText(doc, "summary"),
		Description:  elementText(doc, "description"),
		Priority:     elementText(doc, "priority"),
		Severity:     elementText(doc, "severity"),
		CustomerName: elementText(doc, "customer"),
		Workaround:   elementText(doc, "workaround"),
		RCA:          elementText(doc, "rca"),
	}

	// Labels appear either as repeated <label> children or as one
	// comma-separated <labels> value.
	for _, el := range doc.FindElements("//labels/label") {
		if text := trimmedText(el); text != "" {
			fields.Labels = append(fields.Labels, text)
		}
	}
	if len(fields.Labels) == 0 {
		fields.Labels = splitList(elementText(doc, "labels"))
	}

	return fields, nil
}

func elementText(doc *etree.Document, name string) string {
	return trimmedText(doc.FindElement("//" + name))
}

func trimmedText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
