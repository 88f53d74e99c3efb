package trends

import (
	"context"
	"testing"
)

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.config.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want default %q", client.config.BaseURL, defaultBaseURL)
	}
}

func TestNewClientKeepsExplicitBaseURL(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://trends.internal", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if client.config.BaseURL != "https://trends.internal" {
		t.Errorf("BaseURL = %q, explicit value was overridden", client.config.BaseURL)
	}
}

func TestLookupRejectsInvalidCountry(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://serpapi.example", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	for _, country := range []string{"", "USA!", "united states"} {
		if _, err := client.Lookup(context.Background(), "seo tools", country); err == nil {
			t.Errorf("Lookup accepted invalid country %q", country)
		}
	}
}

func TestLookupHonorsCancelledContext(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://serpapi.example", APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Lookup(ctx, "seo tools", "US"); err != context.Canceled {
		t.Errorf("Lookup error = %v, want context.Canceled", err)
	}
}
