package main

import (
	"context"
	"fmt"

	"github.com/denteo/clinic-backend/internal/adapter"
	"github.com/denteo/clinic-backend/internal/config"
	myHTTP "github.com/denteo/clinic-backend/internal/handler/http"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/server"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/internal/validators"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("api-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateConsuming(); err != nil {
		log.Fatal().Err(err).Msg("invalid api server configuration")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.Connect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewAPIServices(repositories, *cfg, log)

	resolver, err := adapter.NewTokenResolver(cfg.Adapter, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token resolver")
	}

	handler := myHTTP.NewHandler(services, resolver, validators.NewRequestValidator(), log)

	srv, err := server.NewServer(handler.InitAPIRoutes(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
