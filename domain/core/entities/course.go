package entities

// CourseStatus values used by the academic record.
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Course is an academic course on a user's record.
type Course struct {
	ID          string   `json:"id"`
	UserID      string   `json:"user_id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Semester    string   `json:"semester"`
	Year        int      `json:"year"`
	Grade       string   `json:"grade"`
	Credits     float64  `json:"credits"`
	Status      string   `json:"status"`
	SkillIDs    []string `json:"skill_ids"`
}
