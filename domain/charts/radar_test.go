package charts

import (
	"testing"

	"journeymap/domain/core/entities"
	"journeymap/domain/insight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSkillRadar(t *testing.T) {
	skills := []RatedSkill{
		{
			Skill:        entities.Skill{Name: "Python", Category: "Programming", ProficiencyLevel: 8},
			MarketDemand: insight.Score{Value: 0.9, Source: insight.SourceComputed},
		},
		{
			Skill:        entities.Skill{Name: "Go", Category: "Programming", ProficiencyLevel: 4},
			MarketDemand: insight.Score{Value: 0.5, Source: insight.SourceComputed},
		},
		{
			Skill:        entities.Skill{Name: "Statistics", Category: "Data", ProficiencyLevel: 6},
			MarketDemand: insight.Score{Value: 0.6, Source: insight.SourceFallback},
		},
	}

	chart := BuildSkillRadar(skills, 10)

	assert.Equal(t, []string{"Data", "Programming"}, chart.Categories)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Current Proficiency", chart.Series[0].Name)
	assert.Equal(t, "Market Demand", chart.Series[1].Name)

	// Programming: proficiency avg (8+4)/2 = 6, demand avg (0.9+0.5)/2 = 0.7 → 7.
	assert.InDelta(t, 6.0, chart.Series[0].Values[1], 1e-9)
	assert.InDelta(t, 7.0, chart.Series[1].Values[1], 1e-9)

	// Data: single skill.
	assert.InDelta(t, 6.0, chart.Series[0].Values[0], 1e-9)
	assert.InDelta(t, 6.0, chart.Series[1].Values[0], 1e-9)

	assert.Equal(t, 10.0, chart.RadialMax)
}

func TestBuildSkillRadarEmpty(t *testing.T) {
	chart := BuildSkillRadar(nil, 10)
	assert.Empty(t, chart.Categories)
	require.Len(t, chart.Series, 2)
	assert.Empty(t, chart.Series[0].Values)
}
