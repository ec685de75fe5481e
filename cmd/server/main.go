package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/handler"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/server"
	"github.com/MKhiriev/go-kv-keeper/internal/service"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
	"github.com/MKhiriev/go-kv-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("kv-server", logger.EnvironmentLocal).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("kv-server", cfg.App.Environment)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	backgroundWorkers.Run()

	srv.RunServer()

	backgroundWorkers.Stop()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
