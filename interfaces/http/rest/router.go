package rest

import (
	"net/http"

	"journeymap/application/services"
	"journeymap/infrastructure/export"
	"journeymap/interfaces/http/rest/handlers"
	"journeymap/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	visualizer *services.CachedVisualizer
	exporter   *export.Exporter
	enableCORS bool
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	visualizer *services.CachedVisualizer,
	exporter *export.Exporter,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		visualizer: visualizer,
		exporter:   exporter,
		enableCORS: enableCORS,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	vizHandler := handlers.NewVisualizationHandler(rt.visualizer, rt.logger)
	exportHandler := handlers.NewExportHandler(rt.visualizer, rt.exporter, rt.logger)
	cacheHandler := handlers.NewCacheHandler(rt.visualizer, rt.logger)

	router.Route("/visualizations", func(r chi.Router) {
		r.Get("/skill-network/{userID}", vizHandler.GetSkillNetwork)
		r.Get("/progress-timeline/{userID}", vizHandler.GetProgressTimeline)
		r.Get("/skill-radar/{userID}", vizHandler.GetSkillRadar)
		r.Get("/goal-progress/{userID}", vizHandler.GetGoalProgress)
		r.Get("/career-recommendations/{userID}", vizHandler.GetCareerRecommendations)
		r.Post("/{vizType}/{userID}/export", exportHandler.Export)
	})

	router.Route("/cache", func(r chi.Router) {
		r.Get("/stats", cacheHandler.Stats)
		r.Delete("/{userID}", cacheHandler.Invalidate)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
