package main

import (
	"context"
	"fmt"

	"github.com/avdeyev/go-auth-sessions/internal/cache"
	"github.com/avdeyev/go-auth-sessions/internal/config"
	handler "github.com/avdeyev/go-auth-sessions/internal/handler/http"
	"github.com/avdeyev/go-auth-sessions/internal/logger"
	"github.com/avdeyev/go-auth-sessions/internal/server"
	"github.com/avdeyev/go-auth-sessions/internal/service"
	"github.com/avdeyev/go-auth-sessions/internal/store"
	"github.com/avdeyev/go-auth-sessions/internal/token"
	"github.com/avdeyev/go-auth-sessions/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err := migrations.Migrate(storages.DB.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	tokens, err := token.NewManager(cfg.Auth)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token manager")
	}

	sessions, err := cache.NewSessionCache(ctx, cfg.CacheEntryTTL(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session cache")
	}

	services := service.NewServices(storages, tokens, sessions, log)
	handlers := handler.NewHandler(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
