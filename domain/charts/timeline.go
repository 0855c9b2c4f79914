package charts

import (
	"sort"

	"journeymap/domain/insight"
)

// TimelineEvent is a pre-scored input event for the progress timeline.
// Courses carry their year and importance; achievements carry the year
// achieved and the impact of their linked project.
type TimelineEvent struct {
	Year        int
	Name        string
	Type        string
	Description string
	Score       insight.Score
}

// BuildProgressTimeline merges course and achievement events into one
// chronological series. Ties on year are broken by name so the output is
// stable for equal inputs.
func BuildProgressTimeline(events []TimelineEvent) TimelineChart {
	points := make([]TimelinePoint, len(events))
	for i, ev := range events {
		points[i] = TimelinePoint{
			Date:        ev.Year,
			Name:        ev.Name,
			Type:        ev.Type,
			Description: ev.Description,
			Score:       ev.Score,
		}
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Date != points[j].Date {
			return points[i].Date < points[j].Date
		}
		return points[i].Name < points[j].Name
	})

	return TimelineChart{
		Data: points,
		Layout: Layout{
			Title:      "Academic Journey Timeline",
			ShowLegend: true,
			Background: "white",
		},
	}
}
