// Package main is the entry point for the text adventure.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/samdwyer/parlorgames/internal/adventure"
	"github.com/samdwyer/parlorgames/internal/config"
	"github.com/samdwyer/parlorgames/internal/logging"
	"github.com/samdwyer/parlorgames/internal/telemetry"
)

func main() {
	// Not fatal: env vars might be set directly.
	dotenvErr := config.LoadDotEnv()

	app, err := config.LoadApp()
	log := logging.New(os.Stderr, app.LogLevel).With().
		Str("game", "adventure").
		Str("session", uuid.NewString()).
		Logger()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if dotenvErr != nil {
		log.Debug().Err(dotenvErr).Msg(".env file not loaded")
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, app.Telemetry("adventure"))
	if err != nil {
		log.Warn().Err(err).Msg("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("telemetry shutdown failed")
			}
		}()
	}

	var cfg adventure.Config
	if err := config.ParseEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to load adventure configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid adventure configuration")
	}

	atlas, err := adventure.LoadAtlas()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load rooms")
	}

	var cmds adventure.Commands = adventure.NewScript(adventure.DefaultScript...)
	if cfg.Input == adventure.InputStdin {
		cmds = adventure.NewReaderCommands(os.Stdin)
	}

	if _, err := adventure.New(atlas, os.Stdout, log).Run(ctx, cmds); err != nil {
		log.Fatal().Err(err).Msg("adventure error")
	}
}
