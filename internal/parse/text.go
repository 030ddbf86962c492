package parse

import (
	"regexp"
	"strings"

	"github.com/supportops/triage/internal/ticket"
)

// Source labels attached to parsed tickets.
const (
	SourceJira    = "jira"
	SourceZendesk = "zendesk"
)

// zendeskIndicators are the marker strings a Zendesk export carries. Four
// or more matches classify the document as Zendesk.
var zendeskIndicators = []string{
	"ticket #", "requester:", "zendesk", "status:",
	"priority:", "assignee:", "created:", "updated:",
}

var (
	jiraKeyRe         = regexp.MustCompile(`(?i)Issue Key:\s*([A-Z]+-\d+)`)
	jiraSummaryRe     = regexp.MustCompile(`(?i)Summary:\s*(.+)`)
	jiraDescriptionRe = regexp.MustCompile(`(?is)Description:\s*(.+?)(?:\n[A-Z][a-z]+:|$)`)
	jiraPriorityRe    = regexp.MustCompile(`(?i)Priority:\s*(\w+)`)
	jiraSeverityRe    = regexp.MustCompile(`(?i)Severity:\s*(.+)`)
	jiraLabelsRe      = regexp.MustCompile(`(?i)Labels:\s*(.+)`)
	jiraRCARe         = regexp.MustCompile(`(?i)RCA:\s*(.+)`)
	jiraWorkaroundRe  = regexp.MustCompile(`(?i)Workaround:\s*(.+)`)

	zendeskIDRe          = regexp.MustCompile(`(?i)Ticket #(\d+)`)
	zendeskSubjectRe     = regexp.MustCompile(`(?i)Subject:\s*(.+)`)
	zendeskDescriptionRe = regexp.MustCompile(`(?is)Description:\s*(.+?)(?:Comments:|$)`)
	zendeskPriorityRe    = regexp.MustCompile(`(?i)Priority:\s*(\w+)`)
	zendeskTagsRe        = regexp.MustCompile(`(?i)Tags:\s*(.+)`)

	customerFieldRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Customer:\s*(.+)`),
		regexp.MustCompile(`(?i)Account:\s*(.+)`),
		regexp.MustCompile(`(?i)Organization:\s*(.+)`),
		regexp.MustCompile(`(?i)Company:\s*(.+)`),
	}
)

// DetectSource classifies raw export text as Jira or Zendesk by counting
// Zendesk marker strings.
func DetectSource(text string) string {
	lower := strings.ToLower(text)
	matches := 0
	for _, indicator := range zendeskIndicators {
		if strings.Contains(lower, indicator) {
			matches++
		}
	}
	if matches >= 4 {
		return SourceZendesk
	}
	return SourceJira
}

// fieldsFromText extracts ticket fields from the raw text of a PDF or
// DOCX export, routing on the detected source.
func fieldsFromText(text string) ticket.Fields {
	if DetectSource(text) == SourceZendesk {
		return zendeskFields(text)
	}
	return jiraFields(text)
}

func jiraFields(text string) ticket.Fields {
	return ticket.Fields{
		Source:       SourceJira,
		Key:          firstGroup(jiraKeyRe, text),
		Summary:      firstGroup(jiraSummaryRe, text),
		Description:  jiraDescription(text),
		Priority:     firstGroup(jiraPriorityRe, text),
		Severity:     firstGroup(jiraSeverityRe, text),
		CustomerName: customerField(text),
		Workaround:   firstGroup(jiraWorkaroundRe, text),
		RCA:          firstGroup(jiraRCARe, text),
		Labels:       splitList(firstGroup(jiraLabelsRe, text)),
	}
}

func zendeskFields(text string) ticket.Fields {
	return ticket.Fields{
		Source:       SourceZendesk,
		Key:          firstGroup(zendeskIDRe, text),
		Summary:      firstGroup(zendeskSubjectRe, text),
		Description:  zendeskDescription(text),
		Priority:     firstGroup(zendeskPriorityRe, text),
		CustomerName: customerField(text),
		Labels:       splitList(firstGroup(zendeskTagsRe, text)),
	}
}

// jiraDescription pulls the Description block, stopping at the next
// "Title:"-style field line. Falls back to a truncated slice of the raw
// text so downstream keyword matching still has something to work with.
func jiraDescription(text string) string {
	if desc := firstGroup(jiraDescriptionRe, text); desc != "" {
		return desc
	}
	return truncate(text, 1000)
}

// zendeskDescription pulls the block between Description: and Comments:,
// else the first substantial text lines.
func zendeskDescription(text string) string {
	if desc := firstGroup(zendeskDescriptionRe, text); desc != "" {
		return desc
	}

	var lines []string
	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed != "" && len(line) > 50:
			inBlock = true
			lines = append(lines, trimmed)
		case inBlock && trimmed == "":
			return strings.Join(lines, " ")
		}
	}
	if len(lines) > 0 {
		return strings.Join(lines, " ")
	}
	return truncate(text, 500)
}

func customerField(text string) string {
	for _, re := range customerFieldRes {
		if m := firstGroup(re, text); m != "" {
			return m
		}
	}
	return ""
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// splitList splits a comma-separated field into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n]
}
