package parser

import (
	"regexp"
	"strings"

	"resume-builder-backend/internal/resume"
)

var (
	emailRe       = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe       = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinInRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	linkedinIDRe  = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/profile/view\?id=[\w-]+`)
	githubRe      = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+(?:/[\w-]+)?`)
	locationRe    = regexp.MustCompile(`(?i)(?:location|address)[:\s]+(.+)`)
	trailPunctRe  = regexp.MustCompile(`[.,;:!?]+$`)
	digitsPunctRe = regexp.MustCompile(`^[\d\s\-()]+$`)

	// Full-line shapes used to keep contact lines out of section prose.
	fullEmailRe = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	fullPhoneRe = regexp.MustCompile(`^(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`)
	linkLabelRe = regexp.MustCompile(`(?i)^(linkedin|github|website):\s*https?://`)
)

// extractContact fills contact fields from the normalized lines, then sweeps
// the whole raw text for profile URLs that line-based matching missed. For
// every field the first value seen in document order wins; later candidates
// are ignored, never merged.
func extractContact(p *resume.PersonalInfo, lines []string, rawText string) {
	for _, line := range lines {
		lower := strings.ToLower(line)

		if m := emailRe.FindString(line); m != "" && p.Email == "" {
			p.Email = m
			continue
		}

		if m := phoneRe.FindString(line); m != "" && p.Phone == "" {
			p.Phone = m
			continue
		}

		if strings.Contains(lower, "linkedin.com") || (strings.Contains(lower, "linkedin") && !strings.Contains(lower, "linkedin:")) {
			m := linkedinInRe.FindString(line)
			if m == "" {
				m = linkedinIDRe.FindString(line)
			}
			if m != "" && p.LinkedIn == "" {
				p.LinkedIn = ensureScheme(m)
			}
			continue
		}

		if strings.Contains(lower, "github.com") || (strings.Contains(lower, "github") && !strings.Contains(lower, "github:")) {
			if m := githubRe.FindString(line); m != "" && p.GitHub == "" {
				p.GitHub = ensureScheme(m)
			}
			continue
		}

		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "www.") {
			url := trailPunctRe.ReplaceAllString(strings.TrimSpace(line), "")
			if p.Website == "" {
				p.Website = ensureScheme(url)
			}
			continue
		}

		if p.Location == "" && (strings.Contains(lower, "location") || strings.Contains(lower, "address")) {
			if m := locationRe.FindStringSubmatch(line); m != nil {
				p.Location = strings.TrimSpace(m[1])
			}
		}
	}

	// Profile links are often buried mid-line in headers or footers; a
	// whole-document sweep catches what the line pass did not.
	if p.LinkedIn == "" {
		m := linkedinInRe.FindString(rawText)
		if m == "" {
			m = linkedinIDRe.FindString(rawText)
		}
		if m != "" {
			p.LinkedIn = ensureScheme(m)
		}
	}
	if p.GitHub == "" {
		if m := githubRe.FindString(rawText); m != "" {
			p.GitHub = ensureScheme(m)
		}
	}
}

// extractFullName picks the first plausible name among the leading lines.
func extractFullName(p *resume.PersonalInfo, lines []string) {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if _, ok := matchHeader(line); ok {
			continue
		}
		lower := strings.ToLower(line)
		if len(line) > 2 && len(line) < 50 &&
			!strings.Contains(line, "@") &&
			!digitsPunctRe.MatchString(line) &&
			!strings.Contains(lower, "resume") &&
			!strings.Contains(lower, "cv") {
			p.FullName = line
			return
		}
	}
}

// fallbackFullName is the post-parse fallback when no leading line qualified.
func fallbackFullName(p *resume.PersonalInfo, lines []string) {
	if p.FullName != "" || len(lines) == 0 {
		return
	}
	first := lines[0]
	if len(first) < 50 && !fullEmailRe.MatchString(first) && !fullPhoneRe.MatchString(first) {
		p.FullName = first
	}
}

// isContactLine reports whether a line was fully consumed by contact
// extraction (bare email, bare phone, or a single labeled link) and should
// not contribute to any section's prose.
func isContactLine(line string) bool {
	if len(line) >= 100 {
		return false
	}
	return fullEmailRe.MatchString(line) || fullPhoneRe.MatchString(line) || linkLabelRe.MatchString(line)
}

func ensureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
