package services

import (
	"context"
	"sort"
	"time"

	"journeymap/application/ports"
	"journeymap/domain/charts"
	"journeymap/domain/core/entities"
	"journeymap/domain/insight"
	apperrors "journeymap/pkg/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Visualizer is the operation set the HTTP layer consumes. The cache
// decorator implements the same interface around VisualizationService.
type Visualizer interface {
	SkillNetwork(ctx context.Context, userID string, opts NetworkOptions) (*SkillNetworkResult, error)
	ProgressTimeline(ctx context.Context, userID string, opts TimelineOptions) (*TimelineResult, error)
	SkillRadar(ctx context.Context, userID string, opts RadarOptions) (*RadarResult, error)
	GoalProgress(ctx context.Context, userID string, opts GoalOptions) (*GoalProgressResult, error)
	CareerRecommendations(ctx context.Context, userID string) (*RecommendationsResult, error)
}

// scoringParallelism caps concurrent completion-API calls per request.
const scoringParallelism = 4

// radarRadialMax is the radial axis bound; proficiency filters run 1-10.
const radarRadialMax = 10

// VisualizationService loads a profile, scores its entities through the
// insight engine and assembles chart descriptions. Stateless: one instance
// serves all requests.
type VisualizationService struct {
	profiles ports.ProfileRepository
	engine   *insight.Engine
	logger   *zap.Logger
}

// NewVisualizationService creates a visualization service.
func NewVisualizationService(profiles ports.ProfileRepository, engine *insight.Engine, logger *zap.Logger) *VisualizationService {
	return &VisualizationService{
		profiles: profiles,
		engine:   engine,
		logger:   logger,
	}
}

// SkillNetwork builds the skill/course/project graph for a user.
func (s *VisualizationService) SkillNetwork(ctx context.Context, userID string, opts NetworkOptions) (*SkillNetworkResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills := filterSkills(profile.Skills, opts.MinProficiency, opts.CategoryFilter)
	if len(skills) == 0 && opts.filtered() {
		return nil, apperrors.NewValidationError("No skills found matching the specified criteria")
	}

	scoredCourses := make([]charts.ScoredCourse, len(profile.Courses))
	scoredProjects := make([]charts.ScoredProject, len(profile.Projects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoringParallelism)
	for i := range profile.Courses {
		g.Go(func() error {
			scoredCourses[i] = charts.ScoredCourse{
				Course:     profile.Courses[i],
				Importance: s.engine.AnalyzeCourseImportance(gctx, profile.Courses[i], profile.User.CareerGoals),
			}
			return nil
		})
	}
	for i := range profile.Projects {
		g.Go(func() error {
			scoredProjects[i] = charts.ScoredProject{
				Project: profile.Projects[i],
				Impact:  s.engine.AnalyzeProjectImpact(gctx, profile.Projects[i]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chart := charts.BuildSkillNetwork(skills, scoredCourses, scoredProjects)

	return &SkillNetworkResult{
		Chart:       chart,
		Title:       "Skills Network",
		Description: "Interactive network of skills, courses and projects",
		NodeCount:   len(chart.Nodes),
		EdgeCount:   len(chart.Edges),
		Categories:  skillCategories(skills),
	}, nil
}

// ProgressTimeline builds the chronological course/achievement series.
func (s *VisualizationService) ProgressTimeline(ctx context.Context, userID string, opts TimelineOptions) (*TimelineResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	fromYear, toYear := yearBounds(opts)
	courses := make([]entities.Course, 0, len(profile.Courses))
	for _, c := range profile.Courses {
		if c.Year >= fromYear && c.Year <= toYear {
			courses = append(courses, c)
		}
	}
	achievements := make([]entities.Achievement, 0, len(profile.Achievements))
	for _, a := range profile.Achievements {
		if y := a.DateAchieved.Year(); y >= fromYear && y <= toYear {
			achievements = append(achievements, a)
		}
	}
	if len(courses)+len(achievements) == 0 && opts.filtered() {
		return nil, apperrors.NewValidationError("No events found matching the specified criteria")
	}

	events := make([]charts.TimelineEvent, len(courses)+len(achievements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoringParallelism)
	for i := range courses {
		g.Go(func() error {
			c := courses[i]
			events[i] = charts.TimelineEvent{
				Year:        c.Year,
				Name:        c.Name,
				Type:        charts.EventCourse,
				Description: c.Description,
				Score:       s.engine.AnalyzeCourseImportance(gctx, c, profile.User.CareerGoals),
			}
			return nil
		})
	}
	for i := range achievements {
		g.Go(func() error {
			a := achievements[i]
			events[len(courses)+i] = charts.TimelineEvent{
				Year:        a.DateAchieved.Year(),
				Name:        a.Title,
				Type:        charts.EventAchievement,
				Description: a.Description,
				Score:       s.achievementImpact(gctx, profile, a),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chart := charts.BuildProgressTimeline(events)

	result := &TimelineResult{
		Chart:       chart,
		Title:       "Academic Journey Timeline",
		Description: "Courses and achievements over time",
		EventCount:  len(chart.Data),
	}
	if len(chart.Data) > 0 {
		result.StartDate = chart.Data[0].Date
		result.EndDate = chart.Data[len(chart.Data)-1].Date
	}
	return result, nil
}

// SkillRadar builds the proficiency-vs-demand radar for a user.
func (s *VisualizationService) SkillRadar(ctx context.Context, userID string, opts RadarOptions) (*RadarResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills := filterSkills(profile.Skills, 0, opts.CategoryFilter)
	if len(skills) == 0 && opts.filtered() {
		return nil, apperrors.NewValidationError("No skills found matching the specified criteria")
	}

	rated := make([]charts.RatedSkill, len(skills))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoringParallelism)
	for i := range skills {
		g.Go(func() error {
			rated[i] = charts.RatedSkill{
				Skill:        skills[i],
				MarketDemand: s.engine.MarketDemand(gctx, skills[i].Name),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	chart := charts.BuildSkillRadar(rated, radarRadialMax)

	var profSum float64
	for _, sk := range skills {
		profSum += float64(sk.ProficiencyLevel)
	}
	avg := 0.0
	if len(skills) > 0 {
		avg = profSum / float64(len(skills))
	}

	return &RadarResult{
		Chart:              chart,
		Title:              "Skill Proficiency vs Market Demand",
		Description:        "Average proficiency and market demand per skill category",
		SkillCategories:    chart.Categories,
		TotalSkills:        len(skills),
		AverageProficiency: avg,
	}, nil
}

// GoalProgress builds the grouped goal-progress bars for a user.
func (s *VisualizationService) GoalProgress(ctx context.Context, userID string, opts GoalOptions) (*GoalProgressResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	goals := make([]entities.Goal, 0, len(profile.Goals))
	for _, g := range profile.Goals {
		if opts.CategoryFilter != "" && g.Category != opts.CategoryFilter {
			continue
		}
		if !opts.includeCompleted() && g.Completed() {
			continue
		}
		goals = append(goals, g)
	}
	if len(goals) == 0 && opts.filtered() {
		return nil, apperrors.NewValidationError("No goals found matching the specified criteria")
	}

	chart := charts.BuildGoalProgress(goals)

	categories := make([]string, len(chart.Series))
	var progressSum float64
	for i, series := range chart.Series {
		categories[i] = series.Category
	}
	for _, g := range goals {
		progressSum += g.Progress
	}
	avg := 0.0
	if len(goals) > 0 {
		avg = progressSum / float64(len(goals)) * 100
	}

	return &GoalProgressResult{
		Chart:           chart,
		Title:           "Goal Progress by Category",
		Description:     "Tracked progress toward academic and career goals",
		GoalCategories:  categories,
		TotalGoals:      len(goals),
		AverageProgress: avg,
	}, nil
}

// CareerRecommendations asks the insight engine for career paths plus the
// growth heuristic for every skill.
func (s *VisualizationService) CareerRecommendations(ctx context.Context, userID string) (*RecommendationsResult, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	growth := make(map[string]insight.Score, len(profile.Skills))
	for _, sk := range profile.Skills {
		growth[sk.Name] = s.engine.CalculateSkillGrowth(sk, profile.Activities)
	}

	return &RecommendationsResult{
		Recommendations: s.engine.CareerRecommendations(ctx, profile),
		SkillGrowth:     growth,
		Title:           "Career Recommendations",
		Description:     "Suggested career paths based on the full profile",
	}, nil
}

// achievementImpact scores an achievement through its linked project, or
// falls back to the neutral default when no project is linked.
func (s *VisualizationService) achievementImpact(ctx context.Context, profile *entities.Profile, a entities.Achievement) insight.Score {
	if a.ProjectID != "" {
		if project, ok := profile.ProjectByID(a.ProjectID); ok {
			return s.engine.AnalyzeProjectImpact(ctx, project)
		}
	}
	return insight.Score{Value: 0.5, Source: insight.SourceFallback}
}

func filterSkills(skills []entities.Skill, minProficiency int, category string) []entities.Skill {
	out := make([]entities.Skill, 0, len(skills))
	for _, s := range skills {
		if minProficiency > 0 && s.ProficiencyLevel < minProficiency {
			continue
		}
		if category != "" && s.Category != category {
			continue
		}
		out = append(out, s)
	}
	return out
}

func skillCategories(skills []entities.Skill) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, s := range skills {
		if s.Category != "" && !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// yearBounds converts the optional ISO date filters into an inclusive year
// range. Dates are validated at the HTTP layer; unparsable values fall back
// to an open bound.
func yearBounds(opts TimelineOptions) (int, int) {
	from, to := 0, int(^uint(0)>>1)
	if opts.StartDate != "" {
		if t, err := time.Parse("2006-01-02", opts.StartDate); err == nil {
			from = t.Year()
		}
	}
	if opts.EndDate != "" {
		if t, err := time.Parse("2006-01-02", opts.EndDate); err == nil {
			to = t.Year()
		}
	}
	return from, to
}
