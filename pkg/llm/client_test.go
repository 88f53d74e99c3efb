package llm

import (
	"strings"
	"testing"
	"time"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Error("NewClient accepted an empty API key")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.config.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", client.config.BaseURL, defaultBaseURL)
	}
	if client.config.DefaultModel != defaultModel {
		t.Errorf("DefaultModel = %q, want default %q", client.config.DefaultModel, defaultModel)
	}
	if client.config.Timeout != defaultTimeout {
		t.Errorf("Timeout = %v, want default %v", client.config.Timeout, defaultTimeout)
	}
}

func TestNewClientKeepsExplicitConfig(t *testing.T) {
	client, err := NewClient(Config{
		APIKey:       "sk-test",
		BaseURL:      "https://proxy.internal",
		DefaultModel: "gpt-4o",
		Timeout:      5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.config.BaseURL != "https://proxy.internal" || client.config.DefaultModel != "gpt-4o" {
		t.Errorf("explicit config was overridden: %+v", client.config)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 200); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 300)
	got := truncate(long, 200)
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncate(long) returned %d chars", len(got))
	}
}
