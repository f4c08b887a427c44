package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mwhitt/launchroom/internal/catalog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	setupLogging()

	config := defaultConfig()
	if path := getEnv("CONFIG_PATH", ""); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load config")
		}
		config = loaded
	}

	cat := catalog.Default()
	if config.CatalogPath != "" {
		loaded, err := catalog.Load(config.CatalogPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", config.CatalogPath).Msg("failed to load catalog")
		}
		cat = loaded
	}
	log.Info().
		Int("parts", len(cat.Parts)).
		Int("materials", len(cat.Materials)).
		Dur("round_duration", cat.RoundDuration).
		Msg("catalog loaded")

	services := setupServices(cat)
	server := setupServer(config, services)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go services.ConnectionManager.Start(ctx)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("launchroom server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if getEnv("LOG_PRETTY", "") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
