package parser

import (
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

// parseCertifications makes one entry per line. A literal " - " separates
// name from issuer; a trailing month-year or bare year token becomes the
// date.
func parseCertifications(lines []string) []resume.Certification {
	entries := []resume.Certification{}

	for _, line := range lines {
		line = stripBullet(line)
		if line == "" {
			continue
		}

		c := resume.Certification{ID: uuid.NewString()}

		if name, issuer, ok := strings.Cut(line, " - "); ok {
			c.Name = strings.TrimSpace(name)
			c.Issuer = strings.TrimSpace(issuer)
		} else {
			c.Name = line
		}

		if m := monthYearRe.FindString(line); m != "" {
			c.Date = m
		} else if m := yearRe.FindString(line); m != "" {
			c.Date = m
		}

		entries = append(entries, c)
	}

	return entries
}
