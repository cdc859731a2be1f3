package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HONEYCOMB_API_KEY", "")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("HONEYCOMB_API_KEY")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Telemetry("guess").Enabled() {
		t.Error("telemetry should be disabled without an API key")
	}
}

func TestLoadAppFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HONEYCOMB_API_KEY", "key")
	t.Setenv("HONEYCOMB_DATASET", "games")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}

	tc := cfg.Telemetry("adventure")
	if !tc.Enabled() || tc.ServiceName != "adventure" || tc.Dataset != "games" {
		t.Errorf("Telemetry() = %+v", tc)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	var target struct {
		N int `env:"PARLORGAMES_TEST_N"`
	}
	t.Setenv("PARLORGAMES_TEST_N", "not-a-number")

	if err := ParseEnv(&target); err == nil {
		t.Error("ParseEnv() should fail on a non-numeric int")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PARLORGAMES_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PARLORGAMES_TEST_DOTENV", "")
	os.Unsetenv("PARLORGAMES_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("PARLORGAMES_TEST_DOTENV"); got != "loaded" {
		t.Errorf("PARLORGAMES_TEST_DOTENV = %q, want %q", got, "loaded")
	}
}
