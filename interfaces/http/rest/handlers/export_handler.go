package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"journeymap/application/services"
	"journeymap/infrastructure/export"
	"journeymap/pkg/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// exportTimeout bounds building plus rendering one export.
const exportTimeout = 60 * time.Second

// ExportHandler handles visualization export requests
type ExportHandler struct {
	visualizer services.Visualizer
	exporter   *export.Exporter
	logger     *zap.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(visualizer services.Visualizer, exporter *export.Exporter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		visualizer: visualizer,
		exporter:   exporter,
		logger:     logger,
	}
}

// ExportRequest is the request body for an export
type ExportRequest struct {
	Format string `json:"format"`
}

// ExportResponse reports where the exported file was written
type ExportResponse struct {
	VisualizationType string `json:"visualization_type"`
	Format            string `json:"format"`
	FilePath          string `json:"file_path"`
	ExportedAt        string `json:"exported_at"`
}

// Export handles POST /visualizations/{vizType}/{userID}/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	vizType := chi.URLParam(r, "vizType")
	userID := chi.URLParam(r, "userID")

	if !services.IsVizType(vizType) {
		common.RespondError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Unknown visualization type: %s", vizType))
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		var req ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusUnprocessableEntity, "Invalid request body")
			return
		}
		format = req.Format
	}
	if !export.IsFormat(format) {
		common.RespondError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("Unsupported export format: %s", format))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), exportTimeout)
	defer cancel()

	result, err := h.build(ctx, vizType, userID)
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}

	path, err := h.exporter.Export(ctx, vizType, format, result)
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, ExportResponse{
		VisualizationType: vizType,
		Format:            format,
		FilePath:          path,
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
	})
}

// build produces the unfiltered result for the named visualization type.
func (h *ExportHandler) build(ctx context.Context, vizType, userID string) (any, error) {
	switch vizType {
	case services.VizSkillNetwork:
		return h.visualizer.SkillNetwork(ctx, userID, services.NetworkOptions{})
	case services.VizTimeline:
		return h.visualizer.ProgressTimeline(ctx, userID, services.TimelineOptions{})
	case services.VizSkillRadar:
		return h.visualizer.SkillRadar(ctx, userID, services.RadarOptions{})
	case services.VizGoalProgress:
		return h.visualizer.GoalProgress(ctx, userID, services.GoalOptions{})
	case services.VizRecommendations:
		return h.visualizer.CareerRecommendations(ctx, userID)
	default:
		return nil, fmt.Errorf("unknown visualization type %q", vizType)
	}
}
