package entities

import "time"

// Skill is a user's self-reported competency.
// ProficiencyLevel is an integer rating; filters accept 1-10 although some
// older records use a 1-5 scale. Records are not rescaled.
type Skill struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel int       `json:"proficiency_level"`
	Description      string    `json:"description"`
	LastUsed         time.Time `json:"last_used"`
}
