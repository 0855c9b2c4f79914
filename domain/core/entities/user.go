package entities

import "time"

// User is a student profile. Entities in this package are plain records:
// they are loaded from the persistence layer, scored in-memory per request,
// and discarded; derived scores are never written back as facts.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FullName       string    `json:"full_name"`
	University     string    `json:"university"`
	Major          string    `json:"major"`
	GraduationYear int       `json:"graduation_year"`
	CareerGoals    []string  `json:"career_goals"`
	CreatedAt      time.Time `json:"created_at"`
}

// Profile bundles a user with everything linked to them. It is the unit the
// repository loads for a visualization request.
type Profile struct {
	User         User          `json:"user"`
	Courses      []Course      `json:"courses"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Goals        []Goal        `json:"goals"`
	Achievements []Achievement `json:"achievements"`
	Activities   []Activity    `json:"activities"`
}

// ProjectByID returns the project with the given id, if present.
func (p *Profile) ProjectByID(id string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return Project{}, false
}
