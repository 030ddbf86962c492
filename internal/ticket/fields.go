// Package ticket defines the normalized field record produced by the file
// parsers and consumed by the estimator, the label extractor, and the
// report renderers.
package ticket

import "strings"

// Fields is the flat view of one support ticket. Every field is optional:
// parsers leave what they cannot find empty, and consumers must treat an
// empty value as absent rather than as an error.
type Fields struct {
	Key          string
	Summary      string
	Description  string
	Priority     string
	Severity     string
	CustomerName string
	Workaround   string
	RCA          string
	Source       string
	Labels       []string
}

// Combined lowercases and joins the given fragments with single spaces.
// The estimator cascades match keywords against this form.
func Combined(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}

// LabelText lowercases and joins the ticket labels into one searchable
// string.
func LabelText(labels []string) string {
	return strings.ToLower(strings.Join(labels, " "))
}

// IsBlank reports whether a field value carries no real content: empty,
// whitespace, or a null-like spreadsheet artifact.
func IsBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "none", "n/a":
		return true
	}
	return false
}
