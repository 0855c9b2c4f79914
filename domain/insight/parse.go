package insight

import (
	"fmt"
	"strconv"
	"strings"
)

// extractScore scans free text for the first token that parses as a decimal
// number and clamps it to [0,1]. The completion API is an untyped boundary:
// replies range from "0.8" to "I would rate this 0.8 because...", and
// occasionally contain no number at all.
func extractScore(text string) (float64, error) {
	for _, tok := range strings.Fields(text) {
		tok = strings.Trim(tok, ".,;:()!?")
		if tok == "" {
			continue
		}
		if !startsWithDigit(tok) {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		return clamp(v), nil
	}
	return 0, fmt.Errorf("no numeric token in %q", snippet(text))
}

func startsWithDigit(s string) bool {
	return s[0] >= '0' && s[0] <= '9'
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}

// Recommendation is one suggested career path parsed from a completion reply.
type Recommendation struct {
	Title           string   `json:"title"`
	ExistingSkills  []string `json:"existing_skills,omitempty"`
	SkillsToDevelop []string `json:"skills_to_develop,omitempty"`
	NextSteps       []string `json:"next_steps,omitempty"`
}

// parseRecommendations parses a numbered-list reply into structured records.
// Numbered lines ("1. Data Engineer") open a record; known detail lines
// attach to the open record; anything malformed is dropped silently.
func parseRecommendations(text string) []Recommendation {
	var recs []Recommendation
	var current *Recommendation

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if title, ok := numberedItem(line); ok {
			if current != nil && current.Title != "" {
				recs = append(recs, *current)
			}
			current = &Recommendation{Title: title}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case strings.Contains(line, "Required skills"):
			current.ExistingSkills = splitList(line)
		case strings.Contains(line, "Skills they need"):
			current.SkillsToDevelop = splitList(line)
		case strings.Contains(line, "Recommended next steps"):
			current.NextSteps = splitList(line)
		}
	}

	if current != nil && current.Title != "" {
		recs = append(recs, *current)
	}
	return recs
}

// numberedItem matches "1. Title", "2) Title" etc. and returns the title.
func numberedItem(line string) (string, bool) {
	if len(line) < 3 || line[0] < '1' || line[0] > '9' {
		return "", false
	}
	if line[1] != '.' && line[1] != ')' {
		return "", false
	}
	title := strings.TrimSpace(line[2:])
	// Detail lines inside a record are also numbered in the prompt format
	// ("2. Required skills: ..."); those are handled by the keyword matches.
	if strings.Contains(title, ":") {
		return "", false
	}
	if title == "" {
		return "", false
	}
	return title, true
}

// splitList takes "Label: a, b, c" and returns the trimmed items after the colon.
func splitList(line string) []string {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return nil
	}
	var items []string
	for _, item := range strings.Split(after, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
