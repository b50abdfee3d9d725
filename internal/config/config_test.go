package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.General.TravelerID != "traveler1" {
		t.Fatalf("TravelerID = %q, want default traveler1", cfg.General.TravelerID)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want default flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestLoad_ReadsTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	confDir := filepath.Join(dir, "tripdeck")
	if err := os.MkdirAll(confDir, 0o750); err != nil {
		t.Fatal(err)
	}
	content := "[general]\ntraveler_id = \"traveler2\"\n\n[advisor]\napi_key = \"test-key\"\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.TravelerID != "traveler2" {
		t.Fatalf("TravelerID = %q, want traveler2", cfg.General.TravelerID)
	}
	if cfg.Advisor.APIKey != "test-key" {
		t.Fatalf("APIKey = %q, want test-key", cfg.Advisor.APIKey)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.TravelerID = "traveler3"
	cfg.Advisor.BaseURL = "http://localhost:9999"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if got.General.TravelerID != "traveler3" || got.Advisor.BaseURL != "http://localhost:9999" {
		t.Fatalf("round trip got %+v", got)
	}
}

func TestAPIKey_EnvOverridesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Advisor.APIKey = "from-file"

	t.Setenv("TRIPDECK_API_KEY", "")
	if got := APIKey(cfg); got != "from-file" {
		t.Fatalf("APIKey = %q, want from-file", got)
	}

	t.Setenv("TRIPDECK_API_KEY", "from-env")
	if got := APIKey(cfg); got != "from-env" {
		t.Fatalf("APIKey = %q, want env value", got)
	}
}
