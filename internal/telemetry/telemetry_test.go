package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestSetupDisabledWithoutKey(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{ServiceName: "guess"})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		cfg     Config
		dataset string
	}{
		{Config{ServiceName: "adventure", APIKey: "abc"}, "adventure"},
		{Config{ServiceName: "guess", APIKey: "abc", Dataset: "games"}, "games"},
	}

	for _, tt := range tests {
		h := tt.cfg.headers()
		if h["x-honeycomb-team"] != "abc" {
			t.Errorf("team header = %q, want %q", h["x-honeycomb-team"], "abc")
		}
		if h["x-honeycomb-dataset"] != tt.dataset {
			t.Errorf("dataset header = %q, want %q", h["x-honeycomb-dataset"], tt.dataset)
		}
	}
}

func TestSetupLeavesEnvironmentAlone(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	os.Unsetenv("OTEL_EXPORTER_OTLP_HEADERS")

	ctx := context.Background()
	shutdown, err := Setup(ctx, Config{ServiceName: "guess", APIKey: "abc"})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer shutdown(ctx)

	if v, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_HEADERS"); ok {
		t.Errorf("OTEL_EXPORTER_OTLP_HEADERS set to %q", v)
	}
}
