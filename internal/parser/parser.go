// Package parser reconstructs a structured resume record from raw extracted
// document text using line-oriented heuristics. It never fails: malformed or
// sparse input degrades to partially empty output, and every invocation is a
// pure function of its input with no shared state.
package parser

import (
	"strings"
	"time"

	"resume-builder-backend/internal/resume"
)

// Parse converts raw extracted plain text into the canonical resume record.
// The empty string yields the all-default record.
func Parse(text string) resume.Resume {
	rec := resume.NewImported()

	lines := NormalizeLines(text)
	if len(lines) == 0 {
		return rec
	}

	extractContact(&rec.Personal, lines, text)
	extractFullName(&rec.Personal, lines)

	bufs := segment(lines, rec.Personal.FullName)

	today := time.Now().UTC().Format("2006-01-02")
	rec.Experience = parseExperience(bufs.experience, today)
	rec.Education = parseEducation(bufs.education)
	rec.Skills = parseSkills(bufs.skills)
	rec.Projects = parseProjects(bufs.projects)
	rec.Certifications = parseCertifications(bufs.certifications)
	rec.Personal.Summary = joinSummary(bufs.summary)

	fallbackFullName(&rec.Personal, lines)

	return rec
}

// joinSummary space-joins buffered summary lines, keeping only lines with
// enough text to be prose.
func joinSummary(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if len(l) > 20 {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, " ")
}
