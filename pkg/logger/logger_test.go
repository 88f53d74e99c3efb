package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerWritesComponentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	log := New(Config{Level: "info", Format: "json", Output: path})
	log.WithComponent("research_agent").
		WithField("seed", "seo tools").
		Info("Starting keyword research")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("log entry is not JSON: %v", err)
	}
	if entry["component"] != "research_agent" {
		t.Errorf("component = %v, want research_agent", entry["component"])
	}
	if entry["seed"] != "seo tools" {
		t.Errorf("seed = %v, want seo tools", entry["seed"])
	}
	if entry["message"] != "Starting keyword research" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestLoggerDerivedLoggersAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	base := New(Config{Level: "info", Output: path})
	base.WithComponent("llm_client").Info("first")
	base.Info("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var entries []map[string]interface{}
	for _, line := range splitLines(data) {
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("log entry is not JSON: %v", err)
		}
		entries = append(entries, entry)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0]["component"] != "llm_client" {
		t.Errorf("derived entry component = %v", entries[0]["component"])
	}
	if _, ok := entries[1]["component"]; ok {
		t.Error("base logger inherited the derived logger's component field")
	}
}

func TestFallbackWriterOnUnopenableFile(t *testing.T) {
	// A directory path cannot be opened as a log file; New must still
	// return a usable logger instead of failing.
	log := New(Config{Level: "info", Output: t.TempDir()})
	log.Info("still alive")
}

func splitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			if i > start {
				lines = append(lines, data[start:i])
			}
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}
