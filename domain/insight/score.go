package insight

// ScoreSource records how a score was produced, so callers and tests can
// tell a real measurement apart from a degraded default.
type ScoreSource string

const (
	// SourceComputed means the score came from a parsed completion-API reply.
	SourceComputed ScoreSource = "computed"
	// SourceHeuristic means the score came from a local calculation.
	SourceHeuristic ScoreSource = "heuristic"
	// SourceFallback means the upstream call or parse failed and the
	// documented default was substituted.
	SourceFallback ScoreSource = "fallback"
)

// Score is a normalized rating in [0,1] plus its provenance.
type Score struct {
	Value  float64     `json:"value"`
	Source ScoreSource `json:"source"`
}

// Fallback reports whether the score is a substituted default.
func (s Score) Fallback() bool {
	return s.Source == SourceFallback
}

// clamp bounds v to [0,1].
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
