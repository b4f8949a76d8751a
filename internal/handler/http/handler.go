package http

import (
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/service"
)

type Handler struct {
	services *service.Services

	// version is the application version served by the version endpoint.
	version string

	// mapsDir is the directory rendered occurrence maps are served from.
	mapsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.App.Version,
		mapsDir:  cfg.Storage.Media.MapsDir,
		logger:   logger,
	}
}
