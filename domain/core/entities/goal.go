package entities

import "time"

// GoalStatus values.
const (
	GoalNotStarted = "Not Started"
	GoalInProgress = "In Progress"
	GoalAchieved   = "Achieved"
)

// Goal is an academic or career objective with tracked progress.
// Progress is a fraction in [0,1].
type Goal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TargetDate  time.Time `json:"target_date"`
	Status      string    `json:"status"`
	Progress    float64   `json:"progress"`
	Priority    int       `json:"priority"`
}

// Completed reports whether the goal is finished.
func (g Goal) Completed() bool {
	return g.Status == GoalAchieved || g.Progress >= 1
}
