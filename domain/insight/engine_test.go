package insight

import (
	"context"
	"errors"
	"testing"
	"time"

	"journeymap/domain/core/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompletions struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletions) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubJobs struct {
	count int
	err   error
}

func (s *stubJobs) CountPostings(ctx context.Context, query string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

func newTestEngine(completions CompletionClient, jobs JobSearchClient) *Engine {
	return NewEngine(completions, jobs, zap.NewNop())
}

func TestAnalyzeCourseImportance(t *testing.T) {
	eng := newTestEngine(&stubCompletions{reply: "I'd rate this 0.85 for a data science career."}, &stubJobs{})

	score := eng.AnalyzeCourseImportance(context.Background(), entities.Course{
		Name:        "Data Science Fundamentals",
		Description: "Introduction to data science",
	}, []string{"Data Scientist"})

	assert.Equal(t, SourceComputed, score.Source)
	assert.InDelta(t, 0.85, score.Value, 1e-9)
}

func TestAnalyzeCourseImportanceFallsBack(t *testing.T) {
	t.Run("upstream error", func(t *testing.T) {
		eng := newTestEngine(&stubCompletions{err: errors.New("connection refused")}, &stubJobs{})
		score := eng.AnalyzeCourseImportance(context.Background(), entities.Course{Name: "CS101"}, nil)
		assert.Equal(t, SourceFallback, score.Source)
		assert.InDelta(t, 0.5, score.Value, 1e-9)
	})

	t.Run("degenerate reply", func(t *testing.T) {
		eng := newTestEngine(&stubCompletions{reply: "This course is very important for your goals."}, &stubJobs{})
		score := eng.AnalyzeCourseImportance(context.Background(), entities.Course{Name: "CS101"}, nil)
		assert.Equal(t, SourceFallback, score.Source)
		assert.InDelta(t, 0.5, score.Value, 1e-9)
	})
}

func TestAnalyzeProjectImpactClampsReply(t *testing.T) {
	eng := newTestEngine(&stubCompletions{reply: "9 out of 10, amazing work"}, &stubJobs{})
	score := eng.AnalyzeProjectImpact(context.Background(), entities.Project{Title: "ML Project"})
	assert.Equal(t, SourceComputed, score.Source)
	assert.InDelta(t, 1.0, score.Value, 1e-9)
}

func TestMarketDemand(t *testing.T) {
	tests := []struct {
		name   string
		jobs   stubJobs
		want   float64
		source ScoreSource
	}{
		{"normalized", stubJobs{count: 300}, 0.3, SourceComputed},
		{"clamped", stubJobs{count: 2500}, 1.0, SourceComputed},
		{"no postings", stubJobs{count: 0}, 0.0, SourceComputed},
		{"fetch failure", stubJobs{err: errors.New("timeout")}, 0.5, SourceFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(&stubCompletions{}, &tt.jobs)
			score := eng.MarketDemand(context.Background(), "Python")
			assert.Equal(t, tt.source, score.Source)
			assert.InDelta(t, tt.want, score.Value, 1e-9)
		})
	}
}

func TestCalculateSkillGrowth(t *testing.T) {
	eng := newTestEngine(&stubCompletions{}, &stubJobs{})
	skill := entities.Skill{Name: "Python"}

	t.Run("no matching activity", func(t *testing.T) {
		score := eng.CalculateSkillGrowth(skill, []entities.Activity{
			{Description: "Read about Rust", Date: time.Now().AddDate(0, 0, -10), Complexity: 0.5},
		})
		assert.Equal(t, SourceHeuristic, score.Source)
		assert.Zero(t, score.Value)
	})

	t.Run("rising complexity yields positive growth", func(t *testing.T) {
		now := time.Now()
		score := eng.CalculateSkillGrowth(skill, []entities.Activity{
			{Description: "python tutorial", Date: now.AddDate(0, 0, -30), Complexity: 0.2},
			{Description: "Python web scraper", Date: now.AddDate(0, 0, -20), Complexity: 0.5},
			{Description: "Built a Python API", Date: now.AddDate(0, 0, -5), Complexity: 0.9},
		})
		assert.Equal(t, SourceHeuristic, score.Source)
		assert.Greater(t, score.Value, 0.0)
		assert.LessOrEqual(t, score.Value, 1.0)
	})

	t.Run("declining complexity clamps to zero", func(t *testing.T) {
		now := time.Now()
		score := eng.CalculateSkillGrowth(skill, []entities.Activity{
			{Description: "python deep dive", Date: now.AddDate(0, 0, -10), Complexity: 0.9},
			{Description: "python basics again", Date: now.AddDate(0, 0, -1), Complexity: 0.1},
		})
		assert.Zero(t, score.Value)
	})

	t.Run("single activity has no trend", func(t *testing.T) {
		score := eng.CalculateSkillGrowth(skill, []entities.Activity{
			{Description: "python", Date: time.Now().AddDate(0, 0, -3), Complexity: 0.8},
		})
		assert.Zero(t, score.Value)
	})
}

func TestCareerRecommendations(t *testing.T) {
	profile := &entities.Profile{
		User:   entities.User{ID: "u1", Major: "Computer Science"},
		Skills: []entities.Skill{{Name: "Python"}, {Name: "SQL"}},
	}

	t.Run("parsed reply", func(t *testing.T) {
		stub := &stubCompletions{reply: "1. Data Engineer\nRequired skills they already have: Python, SQL"}
		eng := newTestEngine(stub, &stubJobs{})
		recs := eng.CareerRecommendations(context.Background(), profile)
		require.Len(t, recs, 1)
		assert.Equal(t, "Data Engineer", recs[0].Title)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("upstream failure yields empty slice", func(t *testing.T) {
		eng := newTestEngine(&stubCompletions{err: errors.New("boom")}, &stubJobs{})
		recs := eng.CareerRecommendations(context.Background(), profile)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})
}
