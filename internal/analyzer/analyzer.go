// Package analyzer scores an assembled resume record against a fixed set of
// ATS-style heuristic checks and produces improvement suggestions. Analyze is
// deterministic and stateless: the same record always yields the same result,
// and every call returns a fresh suggestion list.
package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"resume-builder-backend/internal/resume"
)

// Priority levels for suggestions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PatchExample is one literal phrase replacement.
type PatchExample struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Patch is a tagged structural hint for an automatic fix.
type Patch struct {
	Type     string         `json:"type"`
	Examples []PatchExample `json:"examples"`
}

// Suggestion is a single improvement recommendation. Applied/ignored state is
// tracked by the caller, never here.
type Suggestion struct {
	ID        string `json:"id"`
	Priority  string `json:"priority"`
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	AutoApply bool   `json:"autoApply"`
	Patch     *Patch `json:"patch,omitempty"`
}

// Result is the scorer output: ranked suggestions plus a clamped ATS score.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	ATSScore    int          `json:"atsScore"`
}

const (
	baseScore = 50
	minScore  = 20
	maxScore  = 95
)

var (
	metricsRe = regexp.MustCompile(`(?i)\d+%|\$\d+|\d+\s*(days|months|years|people|users|customers|revenue|increase|decrease|reduction)`)
	passiveRe = regexp.MustCompile(`(?i)\b(was|were|responsible for|duties included|assisted with)\b`)
)

// Analyze runs every check in fixed order; checks adjust the score and append
// suggestions independently and never short-circuit each other.
func Analyze(rec resume.Resume) Result {
	suggestions := []Suggestion{}
	score := baseScore

	// Contact information.
	if rec.Personal.Email == "" && rec.Personal.Phone == "" {
		suggestions = append(suggestions, Suggestion{
			ID:       "c1",
			Priority: PriorityHigh,
			Title:    "Add contact information",
			Detail:   "Add email and phone number at the top of your resume for ATS compatibility",
		})
		score -= 20
	} else {
		score += 5
		if rec.Personal.Email != "" && rec.Personal.Phone != "" {
			score += 5
		}
	}

	// Skill coverage.
	totalSkills := 0
	for _, cat := range rec.Skills {
		totalSkills += len(cat.Skills)
	}
	if totalSkills < 5 {
		suggestions = append(suggestions, Suggestion{
			ID:       "s1",
			Priority: PriorityMedium,
			Title:    "Add more skills",
			Detail:   "Add at least 5 core technical skills separated by commas for better ATS matching",
		})
		score -= 10
	} else {
		bonus := totalSkills
		if bonus > 15 {
			bonus = 15
		}
		score += bonus
	}

	// Experience and projects.
	if len(rec.Experience) == 0 {
		if len(rec.Projects) == 0 {
			suggestions = append(suggestions, Suggestion{
				ID:       "e1",
				Priority: PriorityHigh,
				Title:    "Add experience or projects",
				Detail:   "ATS expects either professional experience or tangible projects. Add at least one.",
			})
			score -= 25
		}
	} else {
		score += 15

		if !anyExperienceMatches(rec.Experience, metricsRe) {
			suggestions = append(suggestions, Suggestion{
				ID:       "e2",
				Priority: PriorityMedium,
				Title:    "Add measurable metrics",
				Detail:   `Add quantified results to your experience bullets (e.g., "Increased performance by 30%", "Managed team of 5")`,
			})
			score -= 10
		} else {
			score += 10
		}

		if anyExperienceMatches(rec.Experience, passiveRe) {
			suggestions = append(suggestions, Suggestion{
				ID:        "e3",
				Priority:  PriorityLow,
				Title:     "Use action verbs",
				Detail:    `Replace passive phrases like "was responsible for" with action verbs like "Led", "Managed", "Developed"`,
				AutoApply: true,
				Patch: &Patch{
					Type: "replace_passive_verbs",
					Examples: []PatchExample{
						{From: "was responsible for", To: "Led"},
						{From: "assisted with", To: "Supported"},
						{From: "duties included", To: "Managed"},
					},
				},
			})
			score -= 5
		}
	}

	// Education.
	if len(rec.Education) == 0 {
		suggestions = append(suggestions, Suggestion{
			ID:       "ed1",
			Priority: PriorityMedium,
			Title:    "Add education",
			Detail:   "Include your educational background (degree, institution, dates)",
		})
		score -= 10
	} else {
		score += 5
	}

	// Summary.
	if len(rec.Personal.Summary) < 50 {
		suggestions = append(suggestions, Suggestion{
			ID:       "sum1",
			Priority: PriorityLow,
			Title:    "Add professional summary",
			Detail:   "Add a 2-3 sentence professional summary highlighting your key qualifications",
		})
		score -= 5
	} else {
		score += 5
	}

	// Overall length, estimated from the serialized record.
	if serialized, err := json.Marshal(rec); err == nil && len(serialized) < 500 {
		suggestions = append(suggestions, Suggestion{
			ID:       "l1",
			Priority: PriorityMedium,
			Title:    "Resume too short",
			Detail:   "Your resume appears too brief. Add more details to experience, projects, or skills.",
		})
		score -= 10
	}

	// Date consistency.
	if hasDateIssues(rec.Experience) {
		suggestions = append(suggestions, Suggestion{
			ID:       "d1",
			Priority: PriorityHigh,
			Title:    "Fix date inconsistencies",
			Detail:   "Some experience entries have start dates after end dates. Please review and correct.",
		})
		score -= 15
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	return Result{Suggestions: suggestions, ATSScore: score}
}

func anyExperienceMatches(entries []resume.Experience, re *regexp.Regexp) bool {
	for _, exp := range entries {
		text := strings.Join(exp.Achievements, " ") + " " + exp.Description
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func hasDateIssues(entries []resume.Experience) bool {
	for _, exp := range entries {
		if exp.Current || exp.StartDate == "" || exp.EndDate == "" {
			continue
		}
		start, okStart := parseLooseDate(exp.StartDate)
		end, okEnd := parseLooseDate(exp.EndDate)
		if okStart && okEnd && start.After(end) {
			return true
		}
	}
	return false
}

var looseDateFormats = []string{
	"2006-01-02",
	"2006-01",
	"January 2006",
	"Jan 2006",
	"2006",
}

// parseLooseDate accepts the date shapes the reconstructor emits. A token
// that parses under no known layout is simply absent, not an error.
func parseLooseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range looseDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
