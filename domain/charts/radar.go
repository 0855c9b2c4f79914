package charts

import (
	"sort"

	"journeymap/domain/core/entities"
	"journeymap/domain/insight"
)

// RatedSkill pairs a skill with its derived market demand.
type RatedSkill struct {
	entities.Skill
	MarketDemand insight.Score
}

// BuildSkillRadar groups skills by category and emits two polar series over
// the shared category axis: average proficiency and average market demand
// (demand rescaled onto the proficiency axis). Categories are sorted for a
// stable axis order.
func BuildSkillRadar(skills []RatedSkill, radialMax float64) RadarChart {
	byCategory := make(map[string][]RatedSkill)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	proficiencies := make([]float64, len(categories))
	demands := make([]float64, len(categories))
	for i, cat := range categories {
		group := byCategory[cat]
		var profSum, demandSum float64
		for _, s := range group {
			profSum += float64(s.ProficiencyLevel)
			demandSum += s.MarketDemand.Value
		}
		n := float64(len(group))
		proficiencies[i] = profSum / n
		// Demand is a [0,1] score; stretch it to share the radial axis.
		demands[i] = demandSum / n * radialMax
	}

	return RadarChart{
		Categories: categories,
		Series: []RadarSeries{
			{Name: "Current Proficiency", Values: proficiencies},
			{Name: "Market Demand", Values: demands},
		},
		RadialMax: radialMax,
		Layout: Layout{
			Title:      "Skill Proficiency vs Market Demand",
			ShowLegend: true,
			Background: "white",
		},
	}
}
