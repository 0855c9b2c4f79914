package charts

import (
	"testing"

	"journeymap/domain/core/entities"
	"journeymap/domain/insight"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSkills() []entities.Skill {
	return []entities.Skill{
		{ID: "s1", Name: "Python", Category: "Programming", ProficiencyLevel: 8},
		{ID: "s2", Name: "SQL", Category: "Data", ProficiencyLevel: 4},
	}
}

func TestBuildSkillNetwork(t *testing.T) {
	skills := testSkills()
	courses := []ScoredCourse{
		{
			Course:     entities.Course{Code: "CS101", Name: "Intro to Programming", SkillIDs: []string{"s1"}},
			Importance: insight.Score{Value: 0.8, Source: insight.SourceComputed},
		},
	}
	projects := []ScoredProject{
		{
			Project: entities.Project{Title: "ML Project", SkillIDs: []string{"s1", "s2"}},
			Impact:  insight.Score{Value: 0.5, Source: insight.SourceFallback},
		},
	}

	chart := BuildSkillNetwork(skills, courses, projects)

	require.Len(t, chart.Nodes, 4)
	require.Len(t, chart.Edges, 3)
	assert.GreaterOrEqual(t, len(chart.Nodes), len(skills))

	byID := make(map[string]Node)
	for _, n := range chart.Nodes {
		byID[n.ID] = n
	}

	python := byID["Python"]
	assert.Equal(t, NodeTypeSkill, python.Type)
	assert.Equal(t, 80.0, python.Size)
	assert.Equal(t, 8, python.Proficiency)

	course := byID["CS101"]
	assert.Equal(t, NodeTypeCourse, course.Type)
	assert.Equal(t, 30.0, course.Size)
	require.NotNil(t, course.Score)
	assert.Equal(t, 0.8, course.Score.Value)

	project := byID["ML Project"]
	assert.Equal(t, NodeTypeProject, project.Type)
	assert.Equal(t, 40.0, project.Size)

	assert.Contains(t, chart.Edges, Edge{Source: "CS101", Target: "Python"})
	assert.Contains(t, chart.Edges, Edge{Source: "ML Project", Target: "SQL"})
}

func TestBuildSkillNetworkSkipsFilteredSkillEdges(t *testing.T) {
	// Only Python survives the caller's filter; the project still references
	// s2, but the graph must not emit an edge to a node it doesn't contain.
	skills := []entities.Skill{{ID: "s1", Name: "Python", ProficiencyLevel: 8}}
	projects := []ScoredProject{
		{Project: entities.Project{Title: "ML Project", SkillIDs: []string{"s1", "s2"}}},
	}

	chart := BuildSkillNetwork(skills, nil, projects)

	require.Len(t, chart.Edges, 1)
	assert.Equal(t, Edge{Source: "ML Project", Target: "Python"}, chart.Edges[0])

	present := make(map[string]bool)
	for _, n := range chart.Nodes {
		present[n.ID] = true
	}
	for _, e := range chart.Edges {
		assert.True(t, present[e.Source])
		assert.True(t, present[e.Target])
	}
}

func TestBuildSkillNetworkEmpty(t *testing.T) {
	chart := BuildSkillNetwork(nil, nil, nil)
	assert.Empty(t, chart.Nodes)
	assert.Empty(t, chart.Edges)
	assert.Equal(t, "Skills Network", chart.Layout.Title)
}

func TestSpringLayoutDeterministic(t *testing.T) {
	skills := testSkills()
	courses := []ScoredCourse{
		{Course: entities.Course{Code: "CS101", SkillIDs: []string{"s1", "s2"}}},
	}

	a := BuildSkillNetwork(skills, courses, nil)
	b := BuildSkillNetwork(skills, courses, nil)

	require.Equal(t, len(a.Nodes), len(b.Nodes))
	for i := range a.Nodes {
		assert.Equal(t, a.Nodes[i].X, b.Nodes[i].X)
		assert.Equal(t, a.Nodes[i].Y, b.Nodes[i].Y)
	}
}

func TestSpringLayoutBounds(t *testing.T) {
	chart := BuildSkillNetwork(testSkills(), nil, nil)
	for _, n := range chart.Nodes {
		assert.GreaterOrEqual(t, n.X, 0.0)
		assert.LessOrEqual(t, n.X, 1.0)
		assert.GreaterOrEqual(t, n.Y, 0.0)
		assert.LessOrEqual(t, n.Y, 1.0)
	}
}
