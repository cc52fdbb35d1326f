package main

import (
	"context"
	"fmt"

	"github.com/harborlight/intake-server/internal/config"
	httpHandler "github.com/harborlight/intake-server/internal/handler/http"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/server"
	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("intake-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.Auth.TokenSignKey == config.InsecureDefaultTokenSignKey {
		log.Warn().Msg("no token signing key configured, falling back to the insecure built-in default; set AUTH_TOKEN_SIGN_KEY in production")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, log)

	if err := services.AuthService.EnsureAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping administrator account")
	}

	handler := httpHandler.NewHandler(services, db, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
