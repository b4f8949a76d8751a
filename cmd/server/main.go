package main

import (
	"context"
	"fmt"

	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/geo"
	"github.com/vheb/biomap/internal/handler"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/internal/server"
	"github.com/vheb/biomap/internal/service"
	"github.com/vheb/biomap/internal/store"
	"github.com/vheb/biomap/internal/workers"
	"github.com/vheb/biomap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("biomap-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	imageSource := adapter.NewImageClient(cfg.Image, log)
	geoData := adapter.NewGeoDataClient(cfg.GeoData, log)
	mailer := adapter.NewMailClient(cfg.Mail, log)
	renderer := geo.NewRenderer(cfg.Storage.Media.MapsDir, log)

	services := service.NewServices(storages, imageSource, geoData, mailer, renderer, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(cfg.Workers, cfg.Storage.Media.MapsDir, log).Run()

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
