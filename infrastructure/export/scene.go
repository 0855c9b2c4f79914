package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"journeymap/application/services"
)

// scene is the renderer-neutral drawing model. Each result type maps onto at
// most one of the shape groups; renderers draw whatever is populated.
type scene struct {
	Title string

	Circles []circle
	Lines   []line
	Points  []point
	Polys   []polygon
	Bars    []bar
	Text    []textBlock

	// Rows back the CSV rendition: a header followed by data rows.
	Rows [][]string
}

type circle struct {
	X, Y, R float64
	Fill    string
	Label   string
}

type line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
}

type point struct {
	X, Y  float64
	Label string
}

type polygon struct {
	Name   string
	Xs, Ys []float64
	Stroke string
}

type bar struct {
	Label    string
	Fraction float64
	Group    string
}

type textBlock struct {
	Heading string
	Lines   []string
}

// Canvas size shared by the PNG, SVG and PDF renderers.
const (
	canvasW = 1200
	canvasH = 800
	margin  = 60.0
)

var polyColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728"}

func networkScene(r *services.SkillNetworkResult) *scene {
	sc := &scene{Title: r.Title}
	pos := make(map[string][2]float64, len(r.Chart.Nodes))

	for _, n := range r.Chart.Nodes {
		x := margin + n.X*(canvasW-2*margin)
		y := margin + n.Y*(canvasH-2*margin)
		pos[n.ID] = [2]float64{x, y}
		sc.Circles = append(sc.Circles, circle{
			X:     x,
			Y:     y,
			R:     4 + n.Size/4,
			Fill:  n.Color,
			Label: n.Label,
		})
	}
	for _, e := range r.Chart.Edges {
		s, t := pos[e.Source], pos[e.Target]
		sc.Lines = append(sc.Lines, line{X1: s[0], Y1: s[1], X2: t[0], Y2: t[1], Stroke: "#cccccc"})
	}

	sc.Rows = append(sc.Rows, []string{"id", "label", "type", "category", "size", "score"})
	for _, n := range r.Chart.Nodes {
		score := ""
		if n.Score != nil {
			score = fmt.Sprintf("%.3f", n.Score.Value)
		}
		sc.Rows = append(sc.Rows, []string{
			n.ID, n.Label, n.Type, n.Category, fmt.Sprintf("%.1f", n.Size), score,
		})
	}
	return sc
}

func timelineScene(r *services.TimelineResult) *scene {
	sc := &scene{Title: r.Title}
	data := r.Chart.Data
	if len(data) == 0 {
		return sc
	}

	minYear, maxYear := data[0].Date, data[len(data)-1].Date
	span := float64(maxYear - minYear)
	if span == 0 {
		span = 1
	}

	var prev *point
	for _, p := range data {
		x := margin + float64(p.Date-minYear)/span*(canvasW-2*margin)
		y := canvasH - margin - p.Score.Value*(canvasH-2*margin)
		pt := point{X: x, Y: y, Label: fmt.Sprintf("%d %s", p.Date, p.Name)}
		sc.Points = append(sc.Points, pt)
		if prev != nil {
			sc.Lines = append(sc.Lines, line{X1: prev.X, Y1: prev.Y, X2: pt.X, Y2: pt.Y, Stroke: "#1f77b4"})
		}
		prev = &pt
	}

	sc.Rows = append(sc.Rows, []string{"date", "name", "type", "description", "score"})
	for _, p := range data {
		sc.Rows = append(sc.Rows, []string{
			fmt.Sprintf("%d", p.Date), p.Name, p.Type, p.Description, fmt.Sprintf("%.3f", p.Score.Value),
		})
	}
	return sc
}

func radarScene(r *services.RadarResult) *scene {
	sc := &scene{Title: r.Title}
	n := len(r.Chart.Categories)
	if n == 0 {
		return sc
	}

	cx, cy := canvasW/2.0, canvasH/2.0
	radius := canvasH/2.0 - margin
	max := r.Chart.RadialMax
	if max == 0 {
		max = 1
	}

	for i, series := range r.Chart.Series {
		poly := polygon{Name: series.Name, Stroke: polyColors[i%len(polyColors)]}
		for j, v := range series.Values {
			x, y := polarPoint(cx, cy, radius*v/max, j, n)
			poly.Xs = append(poly.Xs, x)
			poly.Ys = append(poly.Ys, y)
		}
		sc.Polys = append(sc.Polys, poly)
	}
	for j, cat := range r.Chart.Categories {
		x, y := polarPoint(cx, cy, radius, j, n)
		sc.Lines = append(sc.Lines, line{X1: cx, Y1: cy, X2: x, Y2: y, Stroke: "#dddddd"})
		sc.Points = append(sc.Points, point{X: x, Y: y, Label: cat})
	}

	header := []string{"category"}
	for _, series := range r.Chart.Series {
		header = append(header, series.Name)
	}
	sc.Rows = append(sc.Rows, header)
	for j, cat := range r.Chart.Categories {
		row := []string{cat}
		for _, series := range r.Chart.Series {
			row = append(row, fmt.Sprintf("%.2f", series.Values[j]))
		}
		sc.Rows = append(sc.Rows, row)
	}
	return sc
}

func goalScene(r *services.GoalProgressResult) *scene {
	sc := &scene{Title: r.Title}
	sc.Rows = append(sc.Rows, []string{"category", "goal", "progress"})
	for _, series := range r.Chart.Series {
		for _, b := range series.Bars {
			sc.Bars = append(sc.Bars, bar{Label: b.Title, Fraction: b.Progress, Group: series.Category})
			sc.Rows = append(sc.Rows, []string{series.Category, b.Title, b.Label})
		}
	}
	return sc
}

func recommendationsScene(r *services.RecommendationsResult) *scene {
	sc := &scene{Title: r.Title}
	for _, rec := range r.Recommendations {
		block := textBlock{Heading: rec.Title}
		if len(rec.ExistingSkills) > 0 {
			block.Lines = append(block.Lines, "Existing skills: "+joinComma(rec.ExistingSkills))
		}
		if len(rec.SkillsToDevelop) > 0 {
			block.Lines = append(block.Lines, "Skills to develop: "+joinComma(rec.SkillsToDevelop))
		}
		block.Lines = append(block.Lines, rec.NextSteps...)
		sc.Text = append(sc.Text, block)
	}

	sc.Rows = append(sc.Rows, []string{"career_path", "existing_skills", "skills_to_develop", "next_steps"})
	for _, rec := range r.Recommendations {
		sc.Rows = append(sc.Rows, []string{
			rec.Title, joinComma(rec.ExistingSkills), joinComma(rec.SkillsToDevelop), joinComma(rec.NextSteps),
		})
	}

	if len(r.SkillGrowth) > 0 {
		names := make([]string, 0, len(r.SkillGrowth))
		for name := range r.SkillGrowth {
			names = append(names, name)
		}
		sort.Strings(names)
		block := textBlock{Heading: "Skill growth"}
		for _, name := range names {
			block.Lines = append(block.Lines, fmt.Sprintf("%s: %.2f", name, r.SkillGrowth[name].Value))
		}
		sc.Text = append(sc.Text, block)
	}
	return sc
}

func polarPoint(cx, cy, r float64, index, total int) (float64, float64) {
	angle := 2 * math.Pi * float64(index) / float64(total)
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

func joinComma(items []string) string {
	return strings.Join(items, ", ")
}
