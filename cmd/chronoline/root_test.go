package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chronoline.yml")
	body := "theme: light\ncategory: Hardware\nstart_year: 1977\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := rootCmd.ParseFlags([]string{"--config", path, "--theme", "dark", "--year", "1981", "--no-watch"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	cfg, err := loadConfig(rootCmd, []string{"events.json"})
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Data != "events.json" {
		t.Errorf("path argument should set data, got %q", cfg.Data)
	}
	if cfg.Theme != "dark" || cfg.StartYear != 1981 {
		t.Errorf("flags should win: theme %q, year %d", cfg.Theme, cfg.StartYear)
	}
	if cfg.Category != "Hardware" {
		t.Errorf("unset flags should keep the file value, got %q", cfg.Category)
	}
	if cfg.Watch {
		t.Error("--no-watch should disable watching")
	}

	if err := rootCmd.ParseFlags([]string{"--theme", "sepia"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(rootCmd, nil); err == nil {
		t.Error("invalid theme should be rejected")
	}
}
