package main

import (
	"context"
	"fmt"

	"github.com/warblerhq/warbler/internal/config"
	"github.com/warblerhq/warbler/internal/handler"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/server"
	"github.com/warblerhq/warbler/internal/service"
	"github.com/warblerhq/warbler/internal/store"
	"github.com/warblerhq/warbler/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("warbler-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, db, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	// goose migrations target PostgreSQL; the sqlite backend bootstraps its
	// own schema on connect.
	if cfg.Storage.DB.Driver != "sqlite3" {
		if err = migrations.Migrate(db.DB); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}
	}

	services := service.NewServices(storages, cfg.App, log)
	handlers := handler.NewHandlers(services, log)

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
