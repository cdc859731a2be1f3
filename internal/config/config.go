// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/parlorgames/internal/telemetry"
)

// App holds settings shared by every binary.
type App struct {
	LogLevel         string `env:"LOG_LEVEL"         envDefault:"info"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_DATASET"`
}

// Telemetry returns the exporter settings for the named service.
func (a App) Telemetry(service string) telemetry.Config {
	return telemetry.Config{
		ServiceName: service,
		APIKey:      a.HoneycombAPIKey,
		Dataset:     a.HoneycombDataset,
	}
}

// LoadDotEnv loads a .env file for local development.
// A missing file is not an error; variables may be set directly.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadApp parses the shared App settings.
func LoadApp() (App, error) {
	var cfg App
	if err := ParseEnv(&cfg); err != nil {
		return App{}, err
	}
	return cfg, nil
}
