package charts

import (
	"journeymap/domain/core/entities"
	"journeymap/domain/insight"
)

// ScoredCourse pairs a course with its derived importance.
type ScoredCourse struct {
	entities.Course
	Importance insight.Score
}

// ScoredProject pairs a project with its derived impact.
type ScoredProject struct {
	entities.Project
	Impact insight.Score
}

// BuildSkillNetwork builds the undirected skill/course/project graph.
// Node size encodes proficiency for skills and is fixed for courses and
// projects. Edges connect a course or project to each skill it references;
// references to skills absent from the input (e.g. dropped by a filter) are
// skipped so the graph never names a node it does not contain.
func BuildSkillNetwork(skills []entities.Skill, courses []ScoredCourse, projects []ScoredProject) NetworkChart {
	skillName := make(map[string]string, len(skills))

	nodes := make([]Node, 0, len(skills)+len(courses)+len(projects))
	for _, s := range skills {
		skillName[s.ID] = s.Name
		nodes = append(nodes, Node{
			ID:          s.Name,
			Label:       s.Name,
			Type:        NodeTypeSkill,
			Size:        float64(s.ProficiencyLevel) * 10,
			Color:       colorSkill,
			Category:    s.Category,
			Proficiency: s.ProficiencyLevel,
		})
	}
	for i := range courses {
		c := courses[i]
		score := c.Importance
		nodes = append(nodes, Node{
			ID:    c.Code,
			Label: c.Name,
			Type:  NodeTypeCourse,
			Size:  30,
			Color: colorCourse,
			Score: &score,
		})
	}
	for i := range projects {
		p := projects[i]
		score := p.Impact
		nodes = append(nodes, Node{
			ID:    p.Title,
			Label: p.Title,
			Type:  NodeTypeProject,
			Size:  40,
			Color: colorProject,
			Score: &score,
		})
	}

	var edges []Edge
	for _, c := range courses {
		for _, skillID := range c.SkillIDs {
			if name, ok := skillName[skillID]; ok {
				edges = append(edges, Edge{Source: c.Code, Target: name})
			}
		}
	}
	for _, p := range projects {
		for _, skillID := range p.SkillIDs {
			if name, ok := skillName[skillID]; ok {
				edges = append(edges, Edge{Source: p.Title, Target: name})
			}
		}
	}

	ids := make([]string, len(nodes))
	for i, node := range nodes {
		ids[i] = node.ID
	}
	pos := springLayout(ids, edges)
	for i := range nodes {
		p := pos[nodes[i].ID]
		nodes[i].X, nodes[i].Y = p[0], p[1]
	}

	return NetworkChart{
		Nodes: nodes,
		Edges: edges,
		Layout: Layout{
			Title:      "Skills Network",
			ShowLegend: false,
			Background: "white",
		},
	}
}
