package di

import (
	"journeymap/application/ports"
	"journeymap/application/services"
	"journeymap/domain/insight"
	"journeymap/infrastructure/config"
	"journeymap/infrastructure/export"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	ProfileRepo ports.ProfileRepository
	CacheStore  ports.CacheStore
	Engine      *insight.Engine
	Service     *services.VisualizationService
	Visualizer  *services.CachedVisualizer
	Exporter    *export.Exporter
}
