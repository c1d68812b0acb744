package config

import (
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.Data.DefaultYear != 2025 {
		t.Errorf("Data.DefaultYear = %d, want 2025", cfg.Data.DefaultYear)
	}
	if len(cfg.Data.Years) != 2 || cfg.Data.Years[0] != 2024 || cfg.Data.Years[1] != 2025 {
		t.Errorf("Data.Years = %v, want [2024 2025]", cfg.Data.Years)
	}
	if cfg.Data.Timeout != 10*time.Second {
		t.Errorf("Data.Timeout = %v, want 10s", cfg.Data.Timeout)
	}
	if cfg.Prefetch.Interval != 0 {
		t.Errorf("Prefetch.Interval = %v, want 0", cfg.Prefetch.Interval)
	}
}

func TestNew_FromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("YEARS", "2023,2024,2025")
	t.Setenv("DEFAULT_YEAR", "2024")
	t.Setenv("DATA_BASE_URL", "https://example.com/league")
	t.Setenv("PREFETCH_INTERVAL", "15m")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if len(cfg.Data.Years) != 3 {
		t.Errorf("Data.Years = %v, want 3 years", cfg.Data.Years)
	}
	if cfg.Data.DefaultYear != 2024 {
		t.Errorf("Data.DefaultYear = %d, want 2024", cfg.Data.DefaultYear)
	}
	if cfg.Data.BaseURL != "https://example.com/league" {
		t.Errorf("Data.BaseURL = %q", cfg.Data.BaseURL)
	}
	if cfg.Prefetch.Interval != 15*time.Minute {
		t.Errorf("Prefetch.Interval = %v, want 15m", cfg.Prefetch.Interval)
	}
}

func TestNew_InvalidYear(t *testing.T) {
	t.Setenv("DEFAULT_YEAR", "twenty")

	if _, err := New(); err == nil {
		t.Fatal("New() error = nil, want parse error")
	}
}
