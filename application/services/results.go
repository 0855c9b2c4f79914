package services

import (
	"journeymap/domain/charts"
	"journeymap/domain/insight"
)

// Result envelopes returned by every visualization operation: the chart
// description under plot_data plus summary counts.

// SkillNetworkResult is the skill-network response.
type SkillNetworkResult struct {
	Chart       charts.NetworkChart `json:"plot_data"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	NodeCount   int                 `json:"node_count"`
	EdgeCount   int                 `json:"edge_count"`
	Categories  []string            `json:"categories"`
}

// TimelineResult is the progress-timeline response. Start/end are years of
// the earliest and latest event.
type TimelineResult struct {
	Chart       charts.TimelineChart `json:"plot_data"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	StartDate   int                  `json:"start_date"`
	EndDate     int                  `json:"end_date"`
	EventCount  int                  `json:"event_count"`
}

// RadarResult is the skill-radar response.
type RadarResult struct {
	Chart              charts.RadarChart `json:"plot_data"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	SkillCategories    []string          `json:"skill_categories"`
	TotalSkills        int               `json:"total_skills"`
	AverageProficiency float64           `json:"average_proficiency"`
}

// GoalProgressResult is the goal-progress response. AverageProgress is a
// percentage in [0,100].
type GoalProgressResult struct {
	Chart           charts.GoalChart `json:"plot_data"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	GoalCategories  []string         `json:"goal_categories"`
	TotalGoals      int              `json:"total_goals"`
	AverageProgress float64          `json:"average_progress"`
}

// RecommendationsResult is the career-recommendations response. SkillGrowth
// carries the per-skill growth heuristic keyed by skill name.
type RecommendationsResult struct {
	Recommendations []insight.Recommendation `json:"recommendations"`
	SkillGrowth     map[string]insight.Score `json:"skill_growth"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
}
