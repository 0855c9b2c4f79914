package handlers

import (
	"net/http"

	"journeymap/application/services"
	"journeymap/pkg/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CacheHandler handles cache maintenance requests
type CacheHandler struct {
	visualizer *services.CachedVisualizer
	logger     *zap.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(visualizer *services.CachedVisualizer, logger *zap.Logger) *CacheHandler {
	return &CacheHandler{
		visualizer: visualizer,
		logger:     logger,
	}
}

// InvalidateResponse reports how many cache entries were removed
type InvalidateResponse struct {
	UserID         string `json:"user_id"`
	EntriesRemoved int    `json:"entries_removed"`
}

// Invalidate handles DELETE /cache/{userID}. The optional type query
// parameter narrows the sweep to one visualization type.
func (h *CacheHandler) Invalidate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	vizType := r.URL.Query().Get("type")
	if vizType != "" && !services.IsVizType(vizType) {
		common.RespondError(w, http.StatusUnprocessableEntity, "Unknown visualization type: "+vizType)
		return
	}

	removed, err := h.visualizer.Invalidate(r.Context(), userID, vizType)
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}

	h.logger.Info("cache invalidated",
		zap.String("user_id", userID),
		zap.String("viz_type", vizType),
		zap.Int("removed", removed))
	common.RespondJSON(w, http.StatusOK, InvalidateResponse{
		UserID:         userID,
		EntriesRemoved: removed,
	})
}

// Stats handles GET /cache/stats
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.visualizer.Stats(r.Context())
	if err != nil {
		common.RespondAppError(w, h.logger, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, stats)
}
