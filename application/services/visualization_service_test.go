package services

import (
	"context"
	"testing"
	"time"

	"journeymap/domain/core/entities"
	"journeymap/domain/insight"
	apperrors "journeymap/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	profiles map[string]*entities.Profile
}

func (r *fakeRepo) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("User")
	}
	return p, nil
}

func (r *fakeRepo) SaveProfile(ctx context.Context, profile *entities.Profile) error {
	r.profiles[profile.User.ID] = profile
	return nil
}

type fixedCompletions struct {
	reply string
}

func (c fixedCompletions) Complete(ctx context.Context, prompt string) (string, error) {
	return c.reply, nil
}

type fixedJobs struct {
	count int
}

func (j fixedJobs) CountPostings(ctx context.Context, query string) (int, error) {
	return j.count, nil
}

func testProfile() *entities.Profile {
	return &entities.Profile{
		User: entities.User{
			ID:          "42",
			Username:    "ada",
			CareerGoals: []string{"Machine Learning Engineer"},
		},
		Skills: []entities.Skill{
			{ID: "s1", Name: "Python", Category: "Programming", ProficiencyLevel: 8},
			{ID: "s2", Name: "SQL", Category: "Data", ProficiencyLevel: 4},
		},
		Courses: []entities.Course{
			{ID: "c1", Code: "CS101", Name: "Intro to CS", Year: 2023, SkillIDs: []string{"s1"}},
			{ID: "c2", Code: "DB201", Name: "Databases", Year: 2024, SkillIDs: []string{"s2"}},
		},
		Projects: []entities.Project{
			{ID: "p1", Title: "Chess Engine", SkillIDs: []string{"s1"}},
		},
		Goals: []entities.Goal{
			{ID: "g1", Title: "Internship", Category: "Career", Progress: 0.4},
			{ID: "g2", Title: "Graduate", Category: "Academic", Progress: 1.0, Status: entities.GoalAchieved},
		},
		Achievements: []entities.Achievement{
			{ID: "a1", Title: "Hackathon Winner", DateAchieved: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ProjectID: "p1"},
		},
	}
}

func newTestService(profiles ...*entities.Profile) *VisualizationService {
	repo := &fakeRepo{profiles: map[string]*entities.Profile{}}
	for _, p := range profiles {
		repo.profiles[p.User.ID] = p
	}
	engine := insight.NewEngine(fixedCompletions{reply: "0.8 because it builds core foundations"}, fixedJobs{count: 700}, zap.NewNop())
	return NewVisualizationService(repo, engine, zap.NewNop())
}

func TestSkillNetworkBuildsGraph(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.SkillNetwork(context.Background(), "42", NetworkOptions{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.NodeCount)
	assert.Equal(t, 3, result.EdgeCount)
	assert.Equal(t, []string{"Data", "Programming"}, result.Categories)
	assert.Equal(t, "Skills Network", result.Title)
}

func TestSkillNetworkMinProficiencyFilter(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.SkillNetwork(context.Background(), "42", NetworkOptions{MinProficiency: 5})
	require.NoError(t, err)

	// only Python survives, so the SQL edge from DB201 is dropped too
	skillNodes := 0
	for _, n := range result.Chart.Nodes {
		if n.Type == "skill" {
			skillNodes++
		}
	}
	assert.Equal(t, 1, skillNodes)
	assert.Equal(t, 2, result.EdgeCount)
}

func TestSkillNetworkFilterMatchesNothing(t *testing.T) {
	svc := newTestService(testProfile())

	_, err := svc.SkillNetwork(context.Background(), "42", NetworkOptions{MinProficiency: 9})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "No skills found matching the specified criteria")
}

func TestSkillNetworkUnknownUser(t *testing.T) {
	svc := newTestService(testProfile())

	_, err := svc.SkillNetwork(context.Background(), "999", NetworkOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProgressTimelineOrdersEvents(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.ProgressTimeline(context.Background(), "42", TimelineOptions{})
	require.NoError(t, err)

	require.Equal(t, 3, result.EventCount)
	assert.Equal(t, 2023, result.StartDate)
	assert.Equal(t, 2024, result.EndDate)
	assert.Equal(t, "Intro to CS", result.Chart.Data[0].Name)
}

func TestProgressTimelineDateFilter(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.ProgressTimeline(context.Background(), "42", TimelineOptions{
		StartDate: "2024-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.EventCount)
	for _, p := range result.Chart.Data {
		assert.Equal(t, 2024, p.Date)
	}
}

func TestProgressTimelineFilterMatchesNothing(t *testing.T) {
	svc := newTestService(testProfile())

	_, err := svc.ProgressTimeline(context.Background(), "42", TimelineOptions{
		StartDate: "2030-01-01",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "No events found matching the specified criteria")
}

func TestSkillRadarAverages(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.SkillRadar(context.Background(), "42", RadarOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Data", "Programming"}, result.SkillCategories)
	assert.Equal(t, 2, result.TotalSkills)
	assert.InDelta(t, 6.0, result.AverageProficiency, 1e-9)
	assert.Len(t, result.Chart.Series, 2)
}

func TestSkillRadarCategoryFilter(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.SkillRadar(context.Background(), "42", RadarOptions{CategoryFilter: "Programming"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Programming"}, result.SkillCategories)

	_, err = svc.SkillRadar(context.Background(), "42", RadarOptions{CategoryFilter: "Cooking"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestGoalProgressDefaultsIncludeCompleted(t *testing.T) {
	svc := newTestService(testProfile())

	result, err := svc.GoalProgress(context.Background(), "42", GoalOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalGoals)
	assert.InDelta(t, 70.0, result.AverageProgress, 1e-9)
}

func TestGoalProgressExcludesCompleted(t *testing.T) {
	svc := newTestService(testProfile())

	include := false
	result, err := svc.GoalProgress(context.Background(), "42", GoalOptions{IncludeCompleted: &include})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalGoals)
	assert.Equal(t, []string{"Career"}, result.GoalCategories)
	assert.InDelta(t, 40.0, result.AverageProgress, 1e-9)
}

func TestCareerRecommendationsIncludesGrowth(t *testing.T) {
	repo := &fakeRepo{profiles: map[string]*entities.Profile{"42": testProfile()}}
	engine := insight.NewEngine(fixedCompletions{reply: `Career paths:
1. Machine Learning Engineer
2. Required skills: Python
3. Data Engineer`}, fixedJobs{count: 700}, zap.NewNop())
	svc := NewVisualizationService(repo, engine, zap.NewNop())

	result, err := svc.CareerRecommendations(context.Background(), "42")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Recommendations)
	require.Contains(t, result.SkillGrowth, "Python")
	require.Contains(t, result.SkillGrowth, "SQL")
}
