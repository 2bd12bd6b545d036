package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/config"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/infra"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/router"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()

	// Backend selection happens exactly once, here. Firestore is used when the
	// credentials file loads; anything short of that falls back to the
	// embedded SQLite row store. Never re-evaluated per request.
	repo, fotos := selecionarBackend(ctx, cfg)
	log.Info().Str("backend", repo.Kind()).Msg("armazenamento selecionado")

	// Optional Redis geocode cache — absence just disables caching.
	var cache *infra.GeoCache
	if cfg.RedisURL != "" {
		cache, err = infra.NewGeoCache(cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis indisponível, geocache desativada")
			cache = nil
		}
	}

	geocoder := infra.NewNominatimClient(cfg, cache)

	r := router.New(cfg, repo, geocoder, fotos)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("backend do mapa de produtores a escutar em :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// selecionarBackend probes the Firestore credentials and returns the active
// repository plus the photo uploader (nil unless the document backend with a
// configured bucket is active — the row store cannot hold photos anyway).
func selecionarBackend(ctx context.Context, cfg *config.Config) (repository.ProdutorRepository, service.FotoUploader) {
	cli, err := infra.NewFirestore(ctx, cfg.FirebaseCredentials, cfg.FirestoreProjectID)
	if err == nil {
		var fotos service.FotoUploader
		if cfg.StorageBucket != "" {
			up, err := infra.NewStorageUploader(ctx, cfg.FirebaseCredentials, cfg.StorageBucket)
			if err != nil {
				log.Warn().Err(err).Msg("blob store indisponível, fotos de produtos ficam sem URL")
			} else {
				fotos = up
			}
		}
		return repository.NewFirestoreProdutorRepository(cli, cfg.FirestoreCollection), fotos
	}
	log.Warn().Err(err).Msg("firestore indisponível, a usar sqlite local")

	db, err := infra.NewDatabase(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sqlite database")
	}
	return repository.NewSQLiteProdutorRepository(db), nil
}
