// Package charts builds declarative chart descriptions from entity lists.
// Builders are pure functions: no I/O, no clock, no global state. A chart
// description is consumed by a rendering layer, it is not pixels.
package charts

import "journeymap/domain/insight"

// Node colors follow a qualitative palette, one color per node type.
const (
	colorSkill   = "#8dd3c7"
	colorCourse  = "#ffffb3"
	colorProject = "#bebada"
)

// Node types in the skill network.
const (
	NodeTypeSkill   = "skill"
	NodeTypeCourse  = "course"
	NodeTypeProject = "project"
)

// Node is one vertex in the skill network. X/Y come from a force-directed
// layout; their exact values are not a stable contract, only the presence of
// nodes and their attributes is.
type Node struct {
	ID          string         `json:"id"`
	Label       string         `json:"label"`
	Type        string         `json:"type"`
	Size        float64        `json:"size"`
	Color       string         `json:"color"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Category    string         `json:"category,omitempty"`
	Proficiency int            `json:"proficiency,omitempty"`
	Score       *insight.Score `json:"score,omitempty"`
}

// Edge is an undirected connection between two nodes.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Layout carries presentation metadata shared by all chart kinds.
type Layout struct {
	Title      string `json:"title"`
	ShowLegend bool   `json:"show_legend"`
	Background string `json:"background"`
}

// NetworkChart is the skill-network description.
type NetworkChart struct {
	Nodes  []Node `json:"nodes"`
	Edges  []Edge `json:"edges"`
	Layout Layout `json:"layout"`
}

// TimelinePoint is one event on the progress timeline.
type TimelinePoint struct {
	Date        int           `json:"date"`
	Name        string        `json:"name"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Score       insight.Score `json:"score"`
}

// Timeline event type tags.
const (
	EventCourse      = "Course"
	EventAchievement = "Achievement"
)

// TimelineChart is the chronological progress description.
type TimelineChart struct {
	Data   []TimelinePoint `json:"data"`
	Layout Layout          `json:"layout"`
}

// RadarSeries is one polar trace over the shared category axis.
type RadarSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// RadarChart compares proficiency against market demand per skill category.
type RadarChart struct {
	Categories []string      `json:"categories"`
	Series     []RadarSeries `json:"series"`
	RadialMax  float64       `json:"radial_max"`
	Layout     Layout        `json:"layout"`
}

// GoalBar is one bar in the goal-progress chart. Progress is a fraction in
// [0,1]; Label is its percentage-formatted text.
type GoalBar struct {
	Title    string  `json:"title"`
	Progress float64 `json:"progress"`
	Label    string  `json:"label"`
}

// GoalSeries groups the bars of one goal category.
type GoalSeries struct {
	Category string    `json:"category"`
	Bars     []GoalBar `json:"bars"`
}

// GoalChart is the grouped-bar goal-progress description.
type GoalChart struct {
	Series []GoalSeries `json:"series"`
	Layout Layout       `json:"layout"`
}
