package parser

import (
	"regexp"
	"strings"
	"unicode"
)

// sectionBuffers holds the per-section line buffers accumulated by a single
// forward pass. Order within each buffer is document order.
type sectionBuffers struct {
	summary        []string
	experience     []string
	education      []string
	skills         []string
	projects       []string
	certifications []string
}

type sectionKind int

const (
	sectionNone sectionKind = iota
	sectionSummary
	sectionExperience
	sectionEducation
	sectionSkills
	sectionProjects
	sectionCertifications
)

// Exact header families. A header line is the family keyword alone, with an
// optional trailing colon.
var headerRes = []struct {
	kind sectionKind
	re   *regexp.Regexp
}{
	{sectionExperience, regexp.MustCompile(`(?i)^(experience|work experience|professional experience|employment|work history|employment history|professional background)\s*:?\s*$`)},
	{sectionEducation, regexp.MustCompile(`(?i)^(education|academic|academic background|academic qualifications|qualifications|educational background)\s*:?\s*$`)},
	{sectionProjects, regexp.MustCompile(`(?i)^(projects?|project experience|personal projects|side projects|portfolio projects)\s*:?\s*$`)},
	{sectionSkills, regexp.MustCompile(`(?i)^(skills?|technical skills|core competencies|competencies|technical competencies|key skills)\s*:?\s*$`)},
	{sectionCertifications, regexp.MustCompile(`(?i)^(certifications?|certificates?|certifications and licenses)\s*:?\s*$`)},
	{sectionSummary, regexp.MustCompile(`(?i)^(summary|objective|profile|about|professional summary|career objective|executive summary)\s*:?\s*$`)},
}

// Keyword stems for the loose heading rule, which catches headers an author
// styled without the exact wording ("MY TECHNICAL SKILLS", "Career History").
var headerStems = []struct {
	kind  sectionKind
	stems []string
}{
	{sectionExperience, []string{"experience", "employment", "work history", "career history", "professional background"}},
	{sectionEducation, []string{"education", "academic", "qualification"}},
	{sectionProjects, []string{"project", "portfolio"}},
	{sectionSkills, []string{"skill", "competenc"}},
	{sectionCertifications, []string{"certificat", "licens"}},
	{sectionSummary, []string{"summary", "objective", "profile", "about"}},
}

// segment walks normalized lines once, assigning each to the current
// section. Leading un-headered prose is treated as summary text. fullName is
// skipped so the name line never leaks into the summary. There is no
// look-ahead; a detected header is never revisited.
func segment(lines []string, fullName string) sectionBuffers {
	var bufs sectionBuffers
	current := sectionNone

	for _, line := range lines {
		if kind, ok := matchHeader(line); ok {
			current = kind
			continue
		}

		if isContactLine(line) {
			continue
		}
		if current == sectionNone && line == fullName {
			continue
		}

		switch current {
		case sectionNone, sectionSummary:
			bufs.summary = append(bufs.summary, line)
		case sectionExperience:
			bufs.experience = append(bufs.experience, line)
		case sectionEducation:
			bufs.education = append(bufs.education, line)
		case sectionSkills:
			bufs.skills = append(bufs.skills, line)
		case sectionProjects:
			bufs.projects = append(bufs.projects, line)
		case sectionCertifications:
			bufs.certifications = append(bufs.certifications, line)
		}
	}

	return bufs
}

func matchHeader(line string) (sectionKind, bool) {
	for _, h := range headerRes {
		if h.re.MatchString(line) {
			return h.kind, true
		}
	}

	// Loose rule: a short, heading-styled line containing a section stem.
	if len(line) < 50 && len(strings.Fields(line)) <= 5 && isHeadingStyled(line) {
		lower := strings.ToLower(line)
		for _, h := range headerStems {
			for _, stem := range h.stems {
				if strings.Contains(lower, stem) {
					return h.kind, true
				}
			}
		}
	}

	return sectionNone, false
}

// isHeadingStyled reports whether a line is formatted like a heading: all
// capitals, or every word starting with a capital.
func isHeadingStyled(line string) bool {
	hasLetter := false
	hasLower := false
	for _, r := range line {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				hasLower = true
			}
		}
	}
	if !hasLetter {
		return false
	}
	if !hasLower {
		return true
	}
	for _, word := range strings.Fields(line) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
