package entities

import "time"

// Achievement is a dated accomplishment, optionally tied to a course or project.
type Achievement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DateAchieved time.Time `json:"date_achieved"`
	Category     string    `json:"category"`
	CourseID     string    `json:"course_id,omitempty"`
	ProjectID    string    `json:"project_id,omitempty"`
}
