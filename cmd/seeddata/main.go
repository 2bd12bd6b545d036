// Command seeddata creates the local SQLite database file with the fixed test
// dataset, so the map has markers during frontend development without running
// the full server first.
package main

import (
	"context"
	"os"
	"time"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/config"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/infra"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite database")
	}

	repo := repository.NewSQLiteProdutorRepository(db)
	produtores, err := repo.List(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list produtores")
	}

	log.Info().Str("path", cfg.SQLitePath).Int("produtores", len(produtores)).Msg("base de dados pronta")
}
