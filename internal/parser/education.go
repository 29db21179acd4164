package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

// Education ranges allow a missing end: a bare graduation year is common.
var eduRangeRe = regexp.MustCompile(`(?i)(` + dateToken + `)(?:\s*[-–—]\s*(` + dateToken + `))?`)

// parseEducation reconstructs one entry per qualifying line: education blocks
// are typically one line per degree. A comma splits degree from institution;
// a pure date line completes the previous entry; a long line with no comma or
// date signal becomes the previous entry's description.
func parseEducation(lines []string) []resume.Education {
	entries := []resume.Education{}
	var cur *resume.Education

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		if cur != nil && cur.StartDate == "" && cur.EndDate == "" &&
			(dateOnlyLineRe.MatchString(line) || yearPairLineRe.MatchString(line)) {
			applyEducationRange(cur, line)
			continue
		}

		if idx := strings.Index(line, ","); idx >= 0 {
			flush()
			e := resume.Education{
				ID:          uuid.NewString(),
				Degree:      strings.TrimSpace(line[:idx]),
				Institution: stripEduRange(line[idx+1:]),
			}
			applyEducationRange(&e, line)
			cur = &e
			continue
		}

		if len(line) < 80 || hasDateToken(line) {
			flush()
			e := resume.Education{
				ID:          uuid.NewString(),
				Institution: stripEduRange(stripBullet(line)),
			}
			applyEducationRange(&e, line)
			cur = &e
			continue
		}

		if cur != nil && cur.Description == "" {
			cur.Description = line
			continue
		}

		flush()
		e := resume.Education{
			ID:          uuid.NewString(),
			Institution: line,
		}
		cur = &e
	}
	flush()

	return entries
}

// stripEduRange removes date text so it never pollutes the institution name.
func stripEduRange(s string) string {
	s = eduRangeRe.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.Trim(s, " -–—,"))
}

func applyEducationRange(e *resume.Education, line string) {
	m := eduRangeRe.FindStringSubmatch(line)
	if m == nil {
		return
	}
	e.StartDate = strings.TrimSpace(m[1])
	if m[2] != "" {
		e.EndDate = strings.TrimSpace(m[2])
	}
}
