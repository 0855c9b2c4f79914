package handlers

import (
	"net/http"
	"strconv"

	"journeymap/application/services"
	"journeymap/pkg/common"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// VisualizationHandler handles visualization HTTP requests
type VisualizationHandler struct {
	visualizer services.Visualizer
	logger     *zap.Logger
}

// NewVisualizationHandler creates a new visualization handler
func NewVisualizationHandler(visualizer services.Visualizer, logger *zap.Logger) *VisualizationHandler {
	return &VisualizationHandler{
		visualizer: visualizer,
		logger:     logger,
	}
}

// networkQuery carries the validated query parameters of a skill-network
// request. MinProficiency is a pointer so 0 fails validation instead of
// reading as absent.
type networkQuery struct {
	MinProficiency *int   `validate:"omitempty,min=1,max=10"`
	CategoryFilter string `validate:"omitempty,max=100"`
}

type timelineQuery struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

type radarQuery struct {
	CategoryFilter string `validate:"omitempty,max=100"`
}

type goalQuery struct {
	CategoryFilter   string `validate:"omitempty,max=100"`
	IncludeCompleted *bool
}

// GetSkillNetwork handles GET /visualizations/skill-network/{userID}
func (h *VisualizationHandler) GetSkillNetwork(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var q networkQuery
	if raw := r.URL.Query().Get("min_proficiency"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			common.RespondError(w, http.StatusUnprocessableEntity, "min_proficiency must be an integer")
			return
		}
		q.MinProficiency = &v
	}
	q.CategoryFilter = r.URL.Query().Get("category_filter")
	if err := validate.Struct(q); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "min_proficiency must be between 1 and 10")
		return
	}

	opts := services.NetworkOptions{CategoryFilter: q.CategoryFilter}
	if q.MinProficiency != nil {
		opts.MinProficiency = *q.MinProficiency
	}

	result, err := h.visualizer.SkillNetwork(r.Context(), userID, opts)
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetProgressTimeline handles GET /visualizations/progress-timeline/{userID}
func (h *VisualizationHandler) GetProgressTimeline(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	q := timelineQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if err := validate.Struct(q); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "dates must use the YYYY-MM-DD format")
		return
	}

	result, err := h.visualizer.ProgressTimeline(r.Context(), userID, services.TimelineOptions{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetSkillRadar handles GET /visualizations/skill-radar/{userID}
func (h *VisualizationHandler) GetSkillRadar(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	q := radarQuery{CategoryFilter: r.URL.Query().Get("category_filter")}
	if err := validate.Struct(q); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "category_filter is too long")
		return
	}

	result, err := h.visualizer.SkillRadar(r.Context(), userID, services.RadarOptions{
		CategoryFilter: q.CategoryFilter,
	})
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetGoalProgress handles GET /visualizations/goal-progress/{userID}
func (h *VisualizationHandler) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var q goalQuery
	q.CategoryFilter = r.URL.Query().Get("category_filter")
	if raw := r.URL.Query().Get("include_completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			common.RespondError(w, http.StatusUnprocessableEntity, "include_completed must be a boolean")
			return
		}
		q.IncludeCompleted = &v
	}
	if err := validate.Struct(q); err != nil {
		common.RespondError(w, http.StatusUnprocessableEntity, "category_filter is too long")
		return
	}

	result, err := h.visualizer.GoalProgress(r.Context(), userID, services.GoalOptions{
		CategoryFilter:   q.CategoryFilter,
		IncludeCompleted: q.IncludeCompleted,
	})
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetCareerRecommendations handles GET /visualizations/career-recommendations/{userID}
func (h *VisualizationHandler) GetCareerRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	result, err := h.visualizer.CareerRecommendations(r.Context(), userID)
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
