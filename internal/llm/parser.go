package llm

import "strings"

// parseSummaryResponse splits a model response on the SUMMARY: and
// DESCRIPTION: markers. A response that lost its markers degrades
// gracefully: the whole text becomes the description and the summary is a
// placeholder a human will rewrite.
func parseSummaryResponse(text string) (summary, description string) {
	var desc strings.Builder
	inDescription := false

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		switch {
		case strings.HasPrefix(line, "SUMMARY:"):
			summary = strings.TrimSpace(strings.TrimPrefix(line, "SUMMARY:"))
		case strings.HasPrefix(line, "DESCRIPTION:"):
			inDescription = true
		case inDescription:
			desc.WriteString(line)
			desc.WriteString("\n")
		}
	}

	description = strings.TrimSpace(desc.String())

	if summary == "" {
		summary = "Unable to parse summary"
	}
	if description == "" {
		description = strings.TrimSpace(text)
	}
	return summary, description
}
