package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
	}{
		{"debug", true},
		{"info", false},
		{"", false},
		{"bogus", false},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := New(&buf, tt.level)
		log.Debug().Msg("hello")

		if got := buf.Len() > 0; got != tt.debugSeen {
			t.Errorf("New(%q): debug written = %v, want %v", tt.level, got, tt.debugSeen)
		}
	}
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")
	log.Info().Str("session", "abc").Msg("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["session"] != "abc" || entry["message"] != "started" {
		t.Errorf("unexpected entry: %v", entry)
	}
}
