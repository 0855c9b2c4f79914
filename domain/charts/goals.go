package charts

import (
	"fmt"
	"sort"

	"journeymap/domain/core/entities"
)

// BuildGoalProgress groups goals by category, one bar series per category,
// with percentage-formatted labels. Categories and bars are sorted for
// stable output.
func BuildGoalProgress(goals []entities.Goal) GoalChart {
	byCategory := make(map[string][]entities.Goal)
	for _, g := range goals {
		byCategory[g.Category] = append(byCategory[g.Category], g)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	series := make([]GoalSeries, len(categories))
	for i, cat := range categories {
		group := byCategory[cat]
		sort.Slice(group, func(a, b int) bool { return group[a].Title < group[b].Title })

		bars := make([]GoalBar, len(group))
		for j, g := range group {
			bars[j] = GoalBar{
				Title:    g.Title,
				Progress: g.Progress,
				Label:    fmt.Sprintf("%.0f%%", g.Progress*100),
			}
		}
		series[i] = GoalSeries{Category: cat, Bars: bars}
	}

	return GoalChart{
		Series: series,
		Layout: Layout{
			Title:      "Goal Progress by Category",
			ShowLegend: true,
			Background: "white",
		},
	}
}
