package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

var (
	techLabelRe  = regexp.MustCompile(`(?i)^technolog(?:y|ies)\s*:\s*(.*)$`)
	techSplitRe  = regexp.MustCompile(`[,;]`)
	projectURLRe = regexp.MustCompile(`(?i)(?:https?://|www\.|github\.com/)\S+`)
)

// parseProjects opens a new project on every short, non-bullet, non-label
// line. "Technologies:" lines fill the open project's stack; other lines feed
// its description. Extra bullet text is appended rather than dropped.
func parseProjects(lines []string) []resume.Project {
	entries := []resume.Project{}
	var cur *resume.Project

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		techMatch := techLabelRe.FindStringSubmatch(line)
		bullet := isBulletLine(line)

		if !bullet && techMatch == nil && len(line) < 100 {
			flush()
			p := resume.Project{
				ID:           uuid.NewString(),
				Name:         line,
				Technologies: []string{},
			}
			captureProjectLinks(&p, line)
			cur = &p
			continue
		}

		if cur == nil {
			continue
		}

		if techMatch != nil {
			cur.Technologies = splitTechnologies(techMatch[1])
			continue
		}

		captureProjectLinks(cur, line)

		if bullet {
			s := stripBullet(line)
			if s == "" {
				continue
			}
			if cur.Description == "" {
				cur.Description = s
			} else {
				cur.Description += " " + s
			}
			continue
		}

		if cur.Description == "" {
			cur.Description = line
		}
	}
	flush()

	return entries
}

func splitTechnologies(raw string) []string {
	parts := techSplitRe.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// captureProjectLinks picks up repository and demo URLs mentioned in project
// text. First URL of each kind wins.
func captureProjectLinks(p *resume.Project, line string) {
	for _, url := range projectURLRe.FindAllString(line, -1) {
		url = strings.TrimRight(url, ".,;:!?)")
		if strings.Contains(strings.ToLower(url), "github.com") {
			if p.GitHub == "" {
				p.GitHub = ensureScheme(url)
			}
			continue
		}
		if p.Link == "" {
			p.Link = ensureScheme(url)
		}
	}
}
