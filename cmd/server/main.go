package main

import (
	"context"
	"fmt"

	"github.com/vitalog/vitalog/internal/config"
	handlerhttp "github.com/vitalog/vitalog/internal/handler/http"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/server"
	"github.com/vitalog/vitalog/internal/service"
	"github.com/vitalog/vitalog/internal/store"
	"github.com/vitalog/vitalog/internal/workers"
	"github.com/vitalog/vitalog/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vitalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting vitalog server")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB, cfg.Storage.DB.Driver); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.Auth, log)

	if err = services.AuthService.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error ensuring bootstrap admin")
	}

	handlers := handlerhttp.NewHandler(services, cfg.Auth, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(services, cfg.Workers, log)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

	srv.RunServer()
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
