package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

var (
	positionAtRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|@)\s+(.+)$`)
	dashSplitRe  = regexp.MustCompile(`[-–—]`)

	// Header-shaped short lines: a capital followed by a non-lowercase run
	// into another capital ("ACME CORP", "ABC Inc"). Plain sentences
	// ("Increased throughput by 30%") stay attached to the open entry.
	capsHeaderRe = regexp.MustCompile(`^[A-Z][^a-z]*[A-Z]`)
)

// parseExperience groups the experience buffer into job entries. The policy
// for lines arriving before any entry is open is lenient: such a line opens a
// dateless entry rather than being dropped, so no text is lost.
func parseExperience(lines []string, today string) []resume.Experience {
	entries := []resume.Experience{}
	var cur *resume.Experience

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		bullet := isBulletLine(line)

		// A bare date range completes the open entry instead of starting
		// a new one; resumes routinely put dates on their own line.
		if !bullet && cur != nil && cur.StartDate == "" && cur.EndDate == "" && !cur.Current && dateOnlyLineRe.MatchString(line) {
			applyExperienceRange(cur, line, today)
			continue
		}

		if !bullet && startsExperienceEntry(line) {
			flush()
			e := newExperienceEntry(line, today)
			cur = &e
			continue
		}

		if cur == nil {
			e := resume.Experience{
				ID:           uuid.NewString(),
				Position:     line,
				Achievements: []string{},
			}
			cur = &e
			continue
		}

		attachExperienceLine(cur, line)
	}
	flush()

	return entries
}

// startsExperienceEntry reports whether a line opens a new job entry: it
// carries a date token, an "at"/"@" separator, or is a short header-shaped
// line.
func startsExperienceEntry(line string) bool {
	if hasDateToken(line) {
		return true
	}
	if positionAtRe.MatchString(line) || strings.Contains(line, "@") {
		return true
	}
	return len(line) < 100 && capsHeaderRe.MatchString(line)
}

func newExperienceEntry(line string, today string) resume.Experience {
	e := resume.Experience{
		ID:           uuid.NewString(),
		Achievements: []string{},
	}

	if m := positionAtRe.FindStringSubmatch(line); m != nil {
		e.Position = strings.TrimSpace(m[1])
		// Anything after a dash in the company part is assumed to start a
		// date range.
		e.Company = strings.TrimSpace(dashSplitRe.Split(m[2], 2)[0])
	} else {
		e.Position = line
	}

	applyExperienceRange(&e, line, today)
	return e
}

func applyExperienceRange(e *resume.Experience, line string, today string) {
	r, ok := findDateRange(line)
	if !ok {
		return
	}
	e.StartDate = r.start
	if r.current {
		e.Current = true
		e.EndDate = today
	} else {
		e.EndDate = r.end
	}
}

// attachExperienceLine adds a body line to the open entry. The first long
// line becomes the description; everything else lands in achievements, and
// long-enough lines also extend the description. Overlap between the two is
// tolerated on purpose.
func attachExperienceLine(e *resume.Experience, line string) {
	line = stripBullet(line)
	if line == "" {
		return
	}

	if e.Description == "" && len(line) > 50 {
		e.Description = line
		return
	}

	e.Achievements = append(e.Achievements, line)
	if e.Description != "" && len(line) > 20 {
		e.Description += " " + line
	}
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*")
}

func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "•-* \t"))
}
