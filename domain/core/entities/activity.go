package entities

import "time"

// Activity is one entry in a user's activity log. Complexity is a
// self-reported difficulty rating in [0,1]; entries feed the skill-growth
// heuristic and nothing else.
type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Complexity  float64   `json:"complexity"`
}
