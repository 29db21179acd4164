package parser

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resume-builder-backend/internal/resume"
)

var (
	skillSplitRe  = regexp.MustCompile(`[,;•\-*|]`)
	skillJunkRe   = regexp.MustCompile(`^[\d\s-]+$`)
	defaultSkills = "Skills"
)

// parseSkills treats the whole section buffer as one bag of tokens. Tokens
// keep document order inside a single default category; duplicates are kept.
func parseSkills(lines []string) []resume.Skill {
	categories := []resume.Skill{}

	for _, line := range lines {
		tokens := splitSkillTokens(line)
		if len(tokens) == 0 {
			continue
		}
		if len(categories) == 0 {
			categories = append(categories, resume.Skill{
				ID:       uuid.NewString(),
				Category: defaultSkills,
				Skills:   []string{},
			})
		}
		last := &categories[len(categories)-1]
		last.Skills = append(last.Skills, tokens...)
	}

	return categories
}

func splitSkillTokens(line string) []string {
	parts := skillSplitRe.Split(line, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < 2 || len(p) > 49 {
			continue
		}
		if skillJunkRe.MatchString(p) {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}
