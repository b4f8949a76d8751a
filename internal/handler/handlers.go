// Package handler aggregates the transport-level handlers of the
// application.
package handler

import (
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/handler/http"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
