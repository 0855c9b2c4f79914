package insight

import (
	"context"
	"fmt"
	"strings"
	"time"

	"journeymap/domain/core/entities"

	"go.uber.org/zap"
)

// CompletionClient sends a prompt to a hosted text-completion API and returns
// the reply text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// JobSearchClient counts job postings matching a search term.
type JobSearchClient interface {
	CountPostings(ctx context.Context, query string) (int, error)
}

const (
	// defaultScore is substituted when a completion call or parse fails.
	defaultScore = 0.5
	// demandNormalizer converts a posting count into a [0,1] demand score.
	demandNormalizer = 1000
	// upstreamTimeout bounds every outbound call made by the engine.
	upstreamTimeout = 20 * time.Second
)

// Engine derives importance, growth, demand and recommendation data for a
// profile. Upstream failures never propagate: every operation degrades to the
// documented default, tagged SourceFallback so the degradation is observable.
type Engine struct {
	completions CompletionClient
	jobs        JobSearchClient
	logger      *zap.Logger
}

// NewEngine creates an insight engine.
func NewEngine(completions CompletionClient, jobs JobSearchClient, logger *zap.Logger) *Engine {
	return &Engine{
		completions: completions,
		jobs:        jobs,
		logger:      logger,
	}
}

// AnalyzeCourseImportance rates how much a course matters for the given
// career goals.
func (e *Engine) AnalyzeCourseImportance(ctx context.Context, course entities.Course, careerGoals []string) Score {
	prompt := fmt.Sprintf(courseImportancePrompt,
		course.Name, course.Description, strings.Join(careerGoals, ", "))
	return e.completeScore(ctx, "course_importance", prompt)
}

// AnalyzeProjectImpact rates a project's impact from its metadata.
func (e *Engine) AnalyzeProjectImpact(ctx context.Context, project entities.Project) Score {
	prompt := fmt.Sprintf(projectImpactPrompt,
		project.Title, project.Description, strings.Join(project.Technologies, ", "))
	return e.completeScore(ctx, "project_impact", prompt)
}

// MarketDemand estimates demand for a skill from job-posting volume.
func (e *Engine) MarketDemand(ctx context.Context, skillName string) Score {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	count, err := e.jobs.CountPostings(ctx, skillName)
	if err != nil {
		e.logger.Warn("Job search failed, using default demand",
			zap.String("skill", skillName),
			zap.Error(err),
		)
		return Score{Value: defaultScore, Source: SourceFallback}
	}
	return Score{
		Value:  clamp(float64(count) / demandNormalizer),
		Source: SourceComputed,
	}
}

// CareerRecommendations asks the completion API for career paths based on
// the whole profile. Returns an empty slice on any failure.
func (e *Engine) CareerRecommendations(ctx context.Context, profile *entities.Profile) []Recommendation {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	prompt := fmt.Sprintf(careerRecommendationsPrompt,
		profile.User.Major,
		joinNames(profile.Skills, func(s entities.Skill) string { return s.Name }),
		joinNames(profile.Courses, func(c entities.Course) string { return c.Name }),
		joinNames(profile.Projects, func(p entities.Project) string { return p.Title }),
		joinNames(profile.Goals, func(g entities.Goal) string { return g.Title }),
	)

	reply, err := e.completions.Complete(ctx, prompt)
	if err != nil {
		e.logger.Warn("Career recommendations unavailable",
			zap.String("user_id", profile.User.ID),
			zap.Error(err),
		)
		return []Recommendation{}
	}

	recs := parseRecommendations(reply)
	if recs == nil {
		recs = []Recommendation{}
	}
	return recs
}

// completeScore runs a prompt through the completion API and extracts a
// clamped score from the reply.
func (e *Engine) completeScore(ctx context.Context, operation, prompt string) Score {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	reply, err := e.completions.Complete(ctx, prompt)
	if err != nil {
		e.logger.Warn("Completion call failed, using default score",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return Score{Value: defaultScore, Source: SourceFallback}
	}

	value, err := extractScore(reply)
	if err != nil {
		e.logger.Warn("Completion reply had no score, using default",
			zap.String("operation", operation),
			zap.Error(err),
		)
		return Score{Value: defaultScore, Source: SourceFallback}
	}
	return Score{Value: value, Source: SourceComputed}
}

func joinNames[T any](items []T, name func(T) string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, name(it))
	}
	return strings.Join(parts, ", ")
}
