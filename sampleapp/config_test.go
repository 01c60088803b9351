package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
tag = "teXt"
message = "hello there"
log_level = "debug"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Tag != "teXt" {
		t.Errorf("Tag = %q, want teXt", cfg.Tag)
	}
	if cfg.Message != "hello there" {
		t.Errorf("Message = %q", cfg.Message)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, `tag = "hiDe"`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	defaults := defaultConfig()
	if cfg.Tag != "hiDe" {
		t.Errorf("Tag = %q, want hiDe", cfg.Tag)
	}
	if cfg.Message != defaults.Message {
		t.Errorf("Message = %q, want default", cfg.Message)
	}
	if cfg.LogLevel != defaults.LogLevel {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}

func TestLoadConfigBlankTagKeepsDefault(t *testing.T) {
	path := writeConfig(t, `tag = "   "`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Tag != defaultConfig().Tag {
		t.Errorf("Tag = %q, want default", cfg.Tag)
	}
}

func TestLoadConfigBlankLogLevel(t *testing.T) {
	path := writeConfig(t, `log_level = ""`)

	if _, err := loadConfig(path); err == nil {
		t.Fatal("loadConfig accepted a blank log_level")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("loadConfig = %v, want a not-exist error", err)
	}
}
