package insight

import (
	"strings"
	"time"

	"journeymap/domain/core/entities"
)

// CalculateSkillGrowth derives a growth rate for a skill from the user's
// activity log. Pure heuristic, no I/O: activity frequency over the elapsed
// window multiplied by the linear trend of self-reported complexity.
// Returns 0 when no activity mentions the skill.
func (e *Engine) CalculateSkillGrowth(skill entities.Skill, activities []entities.Activity) Score {
	needle := strings.ToLower(skill.Name)
	var relevant []entities.Activity
	for _, act := range activities {
		if strings.Contains(strings.ToLower(act.Description), needle) {
			relevant = append(relevant, act)
		}
	}
	if len(relevant) == 0 {
		return Score{Value: 0, Source: SourceHeuristic}
	}

	earliest := relevant[0].Date
	for _, act := range relevant[1:] {
		if act.Date.Before(earliest) {
			earliest = act.Date
		}
	}
	elapsedDays := time.Since(earliest).Hours() / 24
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	frequency := float64(len(relevant)) / elapsedDays

	complexities := make([]float64, len(relevant))
	for i, act := range relevant {
		complexities[i] = act.Complexity
	}
	trend := trendSlope(complexities)

	return Score{
		Value:  clamp(frequency * trend * 10),
		Source: SourceHeuristic,
	}
}

// trendSlope is the least-squares slope of ys over their indices.
// Fewer than two points have no trend.
func trendSlope(ys []float64) float64 {
	n := float64(len(ys))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
