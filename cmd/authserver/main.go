package main

import (
	"context"
	"fmt"

	"github.com/denteo/clinic-backend/internal/adapter"
	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/events"
	myHTTP "github.com/denteo/clinic-backend/internal/handler/http"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/server"
	"github.com/denteo/clinic-backend/internal/service"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/internal/validators"
	"github.com/denteo/clinic-backend/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateIssuing(); err != nil {
		log.Fatal().Err(err).Msg("invalid auth server configuration")
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

	publisher := newPublisher(cfg.Events, log)
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing event publisher")
		}
	}()

	services, err := service.NewServices(repositories, publisher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	// the auth server always validates its own tokens in-process
	resolver, err := adapter.NewLocalTokenResolver(cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token resolver")
	}

	handler := myHTTP.NewHandler(services, resolver, validators.NewRequestValidator(), log)

	srv, err := server.NewServer(handler.InitAuthRoutes(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newPublisher selects the event publisher for the configured brokers. An
// empty broker list disables event publication entirely.
func newPublisher(cfg config.Events, log *logger.Logger) events.Publisher {
	if len(cfg.Brokers) == 0 {
		log.Info().Msg("no event brokers configured, events disabled")
		return events.NewNopPublisher()
	}

	publisher := events.NewKafkaPublisher(cfg, log)
	workers.NewWorkers(publisher).Run()
	return publisher
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
