package entities

import "time"

// Project is a piece of independent or course work linked to skills.
type Project struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	GithubURL    string    `json:"github_url"`
	DemoURL      string    `json:"demo_url"`
	Technologies []string  `json:"technologies"`
	SkillIDs     []string  `json:"skill_ids"`
}
