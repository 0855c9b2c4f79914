package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"journeymap/application/services"
	"journeymap/domain/core/entities"
	"journeymap/domain/insight"
	"journeymap/infrastructure/cache"
	"journeymap/infrastructure/export"
	"journeymap/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompletions struct{}

func (stubCompletions) Complete(ctx context.Context, prompt string) (string, error) {
	return "0.7 solid match for the stated goals", nil
}

type stubJobs struct{}

func (stubJobs) CountPostings(ctx context.Context, query string) (int, error) {
	return 500, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()

	repo := memory.NewProfileRepository()
	require.NoError(t, repo.SaveProfile(context.Background(), &entities.Profile{
		User: entities.User{ID: "42", Username: "ada", CareerGoals: []string{"Data Scientist"}},
		Skills: []entities.Skill{
			{ID: "s1", Name: "Python", Category: "Programming", ProficiencyLevel: 8},
			{ID: "s2", Name: "SQL", Category: "Data", ProficiencyLevel: 4},
		},
		Courses: []entities.Course{
			{ID: "c1", Code: "CS101", Name: "Intro to CS", Year: 2023, SkillIDs: []string{"s1"}},
		},
		Goals: []entities.Goal{
			{ID: "g1", Title: "Internship", Category: "Career", Progress: 0.5},
		},
	}))

	engine := insight.NewEngine(stubCompletions{}, stubJobs{}, logger)
	svc := services.NewVisualizationService(repo, engine, logger)
	visualizer := services.NewCachedVisualizer(svc, cache.NewMemoryStore(), time.Hour, logger)
	exporter := export.NewExporter(t.TempDir(), logger)

	server := httptest.NewServer(NewRouter(visualizer, exporter, false, logger).Setup())
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	status, body := getJSON(t, server.URL+"/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
}

func TestGetSkillNetwork(t *testing.T) {
	server := newTestServer(t)

	status, body := getJSON(t, server.URL+"/visualizations/skill-network/42")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Skills Network", body["title"])
	assert.EqualValues(t, 3, body["node_count"])
	assert.NotNil(t, body["plot_data"])
}

func TestUnknownUserReturns404Envelope(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{
		"/visualizations/skill-network/999",
		"/visualizations/progress-timeline/999",
		"/visualizations/skill-radar/999",
		"/visualizations/goal-progress/999",
		"/visualizations/career-recommendations/999",
	} {
		status, body := getJSON(t, server.URL+path)
		assert.Equal(t, http.StatusNotFound, status, path)
		assert.Equal(t, "User not found", body["detail"], path)
		assert.Equal(t, "404_ERROR", body["error_code"], path)
		assert.NotEmpty(t, body["timestamp"], path)
	}
}

func TestMinProficiencyOutOfRange(t *testing.T) {
	server := newTestServer(t)

	for _, v := range []string{"0", "11", "abc"} {
		status, body := getJSON(t, server.URL+"/visualizations/skill-network/42?min_proficiency="+v)
		assert.Equal(t, http.StatusUnprocessableEntity, status, v)
		assert.Equal(t, "422_ERROR", body["error_code"], v)
	}
}

func TestFilterMatchingNothingReturns422(t *testing.T) {
	server := newTestServer(t)

	status, body := getJSON(t, server.URL+"/visualizations/skill-network/42?category_filter=Cooking")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "No skills found matching the specified criteria", body["detail"])
	assert.Equal(t, "422_ERROR", body["error_code"])
}

func TestTimelineRejectsMalformedDates(t *testing.T) {
	server := newTestServer(t)

	status, body := getJSON(t, server.URL+"/visualizations/progress-timeline/42?start_date=March+2023")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, body["detail"], "YYYY-MM-DD")
}

func TestGoalProgressIncludeCompletedValidation(t *testing.T) {
	server := newTestServer(t)

	status, _ := getJSON(t, server.URL+"/visualizations/goal-progress/42?include_completed=false")
	assert.Equal(t, http.StatusOK, status)

	status, body := getJSON(t, server.URL+"/visualizations/goal-progress/42?include_completed=maybe")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "422_ERROR", body["error_code"])
}

func TestExportEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(
		server.URL+"/visualizations/skill-network/42/export",
		"application/json",
		strings.NewReader(`{"format":"json"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "skill-network", body["visualization_type"])
	assert.Equal(t, "json", body["format"])
	assert.NotEmpty(t, body["file_path"])
}

func TestExportFormatViaQueryParam(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(
		server.URL+"/visualizations/goal-progress/42/export?format=csv",
		"application/json",
		nil,
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "csv", body["format"])
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(
		server.URL+"/visualizations/skill-network/42/export",
		"application/json",
		strings.NewReader(`{"format":"docx"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["detail"], "Unsupported export format")
}

func TestExportRejectsUnknownVizType(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(
		server.URL+"/visualizations/word-cloud/42/export",
		"application/json",
		strings.NewReader(`{"format":"json"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCacheStatsAndInvalidation(t *testing.T) {
	server := newTestServer(t)

	// populate two entries for user 42
	status, _ := getJSON(t, server.URL+"/visualizations/skill-network/42")
	require.Equal(t, http.StatusOK, status)
	status, _ = getJSON(t, server.URL+"/visualizations/goal-progress/42")
	require.Equal(t, http.StatusOK, status)

	status, stats := getJSON(t, server.URL+"/cache/stats")
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, stats["total_entries"])

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/cache/42", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, body["entries_removed"])

	status, stats = getJSON(t, server.URL+"/cache/stats")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, stats["total_entries"])
}
