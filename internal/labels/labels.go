// Package labels extracts short, searchable keyword labels from ticket
// text: a customer tag plus whole-word matches against a curated
// allow-list of technical terms. Overly generic terms (cluster,
// replication, memory and the like) stay out of the results by not being
// on the list in the first place.
package labels

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxLabels caps the returned list when the caller does not ask
// for a different limit.
const DefaultMaxLabels = 5

// DefaultKeywords returns the built-in technical allow-list. Entries are
// lowercase and specific enough to be useful as filters.
func DefaultKeywords() []string {
	return []string{
		"crdb", "active-active", "aa", "sentinel", "proxy", "dmcproxy",
		"ovc", "vector-clock",
		"acre", "azure", "aws", "gcp", "kubernetes", "k8s", "rlec",
		"crash", "timeout", "acl", "rbac",
		"ssl", "tls", "certificate",
		"upgrade", "migration", "failover",
		"modules", "lua", "rdb", "aof",
		"streams", "pubsub", "search", "json", "timeseries", "graph", "bloom",
	}
}

type keywordPattern struct {
	keyword string
	re      *regexp.Regexp
}

// Extractor matches ticket text against a technical keyword allow-list.
// Patterns are compiled once; a single instance is safe to reuse.
type Extractor struct {
	keywords   []keywordPattern
	customerRe *regexp.Regexp
}

// New returns an Extractor over the given allow-list. A nil list selects
// the built-in keywords.
func New(keywords []string) *Extractor {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	patterns := make([]keywordPattern, 0, len(keywords))
	for _, kw := range keywords {
		patterns = append(patterns, keywordPattern{
			keyword: kw,
			re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}
	return &Extractor{
		keywords:   patterns,
		customerRe: regexp.MustCompile(`^([A-Za-z0-9]+(?:\s+[A-Za-z0-9]+)?)\s*-`),
	}
}

// Extract returns up to maxLabels lowercase labels: the source tag first
// when given, then the customer tag, then technical keywords sorted
// alphabetically. Description keywords are only consulted when the
// summary alone did not fill the limit. maxLabels <= 0 selects
// DefaultMaxLabels. Extraction never fails; unmatched text yields an
// empty or customer-only list.
func (e *Extractor) Extract(summary, description, customerName, source string, maxLabels int) []string {
	if maxLabels <= 0 {
		maxLabels = DefaultMaxLabels
	}

	found := make(map[string]struct{})

	var sourceTag string
	if source != "" {
		sourceTag = strings.ToLower(source)
		found[sourceTag] = struct{}{}
	}

	customerTag := e.customer(summary, customerName)
	if customerTag != "" {
		found[customerTag] = struct{}{}
	}

	for _, kw := range e.match(summary) {
		found[kw] = struct{}{}
	}
	if len(found) < maxLabels && description != "" {
		for _, kw := range e.match(description) {
			found[kw] = struct{}{}
		}
	}

	ordered := make([]string, 0, len(found))
	if sourceTag != "" {
		ordered = append(ordered, sourceTag)
		delete(found, sourceTag)
	}
	if customerTag != "" {
		if _, ok := found[customerTag]; ok {
			ordered = append(ordered, customerTag)
			delete(found, customerTag)
		}
	}

	rest := make([]string, 0, len(found))
	for kw := range found {
		rest = append(rest, kw)
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	if len(ordered) > maxLabels {
		ordered = ordered[:maxLabels]
	}
	return ordered
}

// customer resolves the customer tag: an explicit name wins, otherwise a
// leading "Name - " prefix in the summary. Tags are lowercased with
// spaces turned into hyphens.
func (e *Extractor) customer(summary, customerName string) string {
	if customerName != "" {
		return strings.ReplaceAll(strings.ToLower(customerName), " ", "-")
	}
	m := e.customerRe.FindStringSubmatch(summary)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(m[1])
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

func (e *Extractor) match(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for _, p := range e.keywords {
		if p.re.MatchString(lower) {
			found = append(found, p.keyword)
		}
	}
	return found
}
