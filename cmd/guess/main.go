// Package main is the entry point for the number-guessing game.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/samdwyer/parlorgames/internal/config"
	"github.com/samdwyer/parlorgames/internal/guess"
	"github.com/samdwyer/parlorgames/internal/logging"
	"github.com/samdwyer/parlorgames/internal/telemetry"
)

func main() {
	// Not fatal: env vars might be set directly.
	dotenvErr := config.LoadDotEnv()

	app, err := config.LoadApp()
	log := logging.New(os.Stderr, app.LogLevel).With().
		Str("game", "guess").
		Str("session", uuid.NewString()).
		Logger()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if dotenvErr != nil {
		log.Debug().Err(dotenvErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, app.Telemetry("guess"))
	if err != nil {
		// Continue without telemetry - game still works
		log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	cfg := guess.DefaultConfig()
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load game configuration")
	}

	g, err := guess.New(cfg, os.Stdout, playerFor(cfg), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize game")
	}

	if _, err := g.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("game error")
	}
}

func playerFor(cfg guess.Config) guess.Player {
	if cfg.Input == guess.InputStdin {
		return guess.NewReaderPlayer(os.Stdin)
	}
	return guess.AutoPlayer{}
}
