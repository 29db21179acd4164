package parser

import (
	"regexp"
	"strings"
)

var (
	pageMarkerDashRe = regexp.MustCompile(`(?i)--\s*\d+\s+of\s+\d+\s*--`)
	pageMarkerWordRe = regexp.MustCompile(`(?i)page\s+\d+\s+of\s+\d+`)
	newlineRunRe     = regexp.MustCompile(`\n{3,}`)
	lineSplitRe      = regexp.MustCompile(`\r?\n`)
)

// NormalizeText strips page-boundary markers and collapses runs of three or
// more newlines down to two. Applying it to its own output is a no-op.
func NormalizeText(text string) string {
	text = pageMarkerDashRe.ReplaceAllString(text, "")
	text = pageMarkerWordRe.ReplaceAllString(text, "")
	return newlineRunRe.ReplaceAllString(text, "\n\n")
}

// NormalizeLines turns raw extracted document text into trimmed, non-empty
// lines with page markers removed. Empty input yields an empty slice.
func NormalizeLines(text string) []string {
	normalized := NormalizeText(text)

	raw := lineSplitRe.Split(normalized, -1)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		// A marker that survived trimming still counts as page noise.
		if pageMarkerDashRe.MatchString(l) && strings.TrimSpace(pageMarkerDashRe.ReplaceAllString(l, "")) == "" {
			continue
		}
		if pageMarkerWordRe.MatchString(l) && strings.TrimSpace(pageMarkerWordRe.ReplaceAllString(l, "")) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}
