package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/handler"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/server"
	"github.com/MKhiriev/go-vault-tasks/internal/service"
	"github.com/MKhiriev/go-vault-tasks/internal/store"
	"github.com/MKhiriev/go-vault-tasks/internal/workers"
	"github.com/MKhiriev/go-vault-tasks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("go-vault-tasks-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
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

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)
	bgWorkers.Run(ctx)

	srv.RunServer()

	cancel()
	bgWorkers.Wait()
	log.Info().Msg("server stopped")
}
