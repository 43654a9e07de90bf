package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseDefaultConfig(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	if err != nil {
		t.Fatalf("failed to parse default config: %v", err)
	}

	if cfg.Copywriter.Addr != "localhost:50061" {
		t.Errorf("expected copywriter addr 'localhost:50061', got %q", cfg.Copywriter.Addr)
	}
	if cfg.Experiments.Scope != "landing" {
		t.Errorf("expected scope 'landing', got %q", cfg.Experiments.Scope)
	}
	if cfg.Experiments.TimeoutWindowMinutes != 30 {
		t.Errorf("expected timeout window 30, got %d", cfg.Experiments.TimeoutWindowMinutes)
	}
}

func TestParseMinimalConfig(t *testing.T) {
	data := []byte(`
storage:
  db_path: /tmp/test.db
experiments:
  timeout_window_minutes: 5
`)
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("failed to parse minimal config: %v", err)
	}

	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path '/tmp/test.db', got %q", cfg.Storage.DBPath)
	}
	if cfg.TimeoutWindow() != 5*time.Minute {
		t.Errorf("expected 5m window, got %v", cfg.TimeoutWindow())
	}
	// Defaults should still be set for unspecified fields
	if cfg.Copywriter.Addr != "localhost:50061" {
		t.Errorf("expected default copywriter addr, got %q", cfg.Copywriter.Addr)
	}
	if cfg.Experiments.Scope != "landing" {
		t.Errorf("expected default scope, got %q", cfg.Experiments.Scope)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, DefaultConfigYAML, 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Copywriter.TimeoutSeconds != 20 {
		t.Errorf("expected timeout_seconds 20, got %d", cfg.Copywriter.TimeoutSeconds)
	}
}

func TestGetDBPath(t *testing.T) {
	cfg := &Config{}

	def := cfg.GetDBPath()
	if def == "" {
		t.Error("expected non-empty default db path")
	}

	cfg.Storage.DBPath = "/custom/story.db"
	if got := cfg.GetDBPath(); got != "/custom/story.db" {
		t.Errorf("expected configured path, got %q", got)
	}

	t.Setenv("BUILDSTORY_DB", "/env/story.db")
	if got := cfg.GetDBPath(); got != "/env/story.db" {
		t.Errorf("expected env override, got %q", got)
	}
}

func TestDurationDefaults(t *testing.T) {
	cfg := &Config{}
	if cfg.CopywriterTimeout() != 20*time.Second {
		t.Errorf("expected 20s fallback, got %v", cfg.CopywriterTimeout())
	}
	if cfg.TimeoutWindow() != 30*time.Minute {
		t.Errorf("expected 30m fallback, got %v", cfg.TimeoutWindow())
	}
}

func TestResolveConfigPathExplicitMissing(t *testing.T) {
	if _, err := ResolveConfigPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}
