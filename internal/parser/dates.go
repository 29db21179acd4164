package parser

import (
	"regexp"
	"strings"
)

// dateToken is a year or a "Month Year" pair, abbreviated months included.
const dateToken = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{4}`

var (
	yearRe      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthYearRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`)

	// "<token> - <token|present|current>" with any dash variant.
	dateRangeRe = regexp.MustCompile(`(?i)(` + dateToken + `)\s*[-–—]\s*(` + dateToken + `|present|current)`)

	// Lines that are nothing but a date range. These never open a new entry
	// when the previous entry is still undated; they complete it instead.
	dateOnlyLineRe = regexp.MustCompile(`(?i)^(` + dateToken + `)\s*[-–—]\s*(` + dateToken + `|present|current)$`)
	yearPairLineRe = regexp.MustCompile(`^(19|20)\d{2}(\s*[-–—]\s*(19|20)\d{2})?$`)
)

// dateRange is an extracted start/end pair. Current marks an ongoing range.
type dateRange struct {
	start   string
	end     string
	current bool
}

// findDateRange pulls the first "<start> - <end|present|current>" range out
// of a line. Absence is not an error; the zero value means no range found.
func findDateRange(line string) (dateRange, bool) {
	m := dateRangeRe.FindStringSubmatch(line)
	if m == nil {
		return dateRange{}, false
	}
	r := dateRange{start: strings.TrimSpace(m[1])}
	end := strings.TrimSpace(m[2])
	switch strings.ToLower(end) {
	case "present", "current":
		r.current = true
	default:
		r.end = end
	}
	return r, true
}

func hasDateToken(line string) bool {
	return yearRe.MatchString(line) || monthYearRe.MatchString(line)
}
