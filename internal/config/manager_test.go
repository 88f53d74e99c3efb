package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := writeConfigFile(t, `
openai:
  generation_model: "gpt-4o-mini"
`)

	cfg, err := NewManager().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want default 8000", cfg.Server.Port)
	}
	if cfg.Research.MaxKeywords != 50 {
		t.Errorf("Research.MaxKeywords = %d, want default 50", cfg.Research.MaxKeywords)
	}
	if cfg.Research.BatchSize != 20 {
		t.Errorf("Research.BatchSize = %d, want default 20", cfg.Research.BatchSize)
	}
	if cfg.Research.Country != "US" {
		t.Errorf("Research.Country = %q, want default US", cfg.Research.Country)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want default info", cfg.Logger.Level)
	}
	if cfg.Trends.BaseURL != "https://serpapi.com" {
		t.Errorf("Trends.BaseURL = %q, want the public SerpApi endpoint", cfg.Trends.BaseURL)
	}
}

func TestLoadReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env-key")

	path := writeConfigFile(t, `
server:
  port: 9000
`)

	cfg, err := NewManager().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.OpenAI.APIKey != "sk-env-key" {
		t.Errorf("OpenAI.APIKey = %q, want value from env", cfg.OpenAI.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want file value 9000", cfg.Server.Port)
	}
}

func TestLoadRejectsMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := writeConfigFile(t, `
server:
  port: 8000
`)

	if _, err := NewManager().Load(path); err == nil {
		t.Error("Load accepted config without an API key")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	tests := []struct {
		name    string
		content string
	}{
		{"bad port", "server:\n  port: 70000\n"},
		{"zero batch size", "research:\n  batch_size: 0\n"},
		{"negative max keywords", "research:\n  max_keywords: -5\n"},
	}

	for _, tt := range tests {
		path := writeConfigFile(t, tt.content)
		if _, err := NewManager().Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", tt.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewManager().Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing config file")
	}
}

func TestGetConfigAfterLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := writeConfigFile(t, "server:\n  port: 8100\n")

	m := NewManager()
	if m.GetConfig() != nil {
		t.Error("GetConfig before Load returned non-nil")
	}
	if _, err := m.Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg := m.GetConfig(); cfg == nil || cfg.Server.Port != 8100 {
		t.Errorf("GetConfig after Load = %+v", cfg)
	}
}

func TestReload(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	path := writeConfigFile(t, "server:\n  port: 8100\n")

	m := NewManager()
	if err := m.Reload(); err == nil {
		t.Error("Reload before Load returned nil error")
	}

	if _, err := m.Load(path); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := os.WriteFile(path, []byte("server:\n  port: 8200\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config file: %v", err)
	}
	if err := m.Reload(); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}
	if got := m.GetConfig().Server.Port; got != 8200 {
		t.Errorf("Server.Port after reload = %d, want 8200", got)
	}
}
