package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grove.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
tick_interval = "50ms"
content_dir = "/srv/plants"
seed = 1234
log_level = "debug"
save_name = "garden"
save_interval = "1m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Errorf("Expected 50ms tick, got %v", cfg.TickInterval)
	}
	if cfg.ContentDir != "/srv/plants" {
		t.Errorf("Expected content dir override, got %q", cfg.ContentDir)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected seed 1234, got %d", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.LogLevel)
	}
	if cfg.SaveName != "garden" {
		t.Errorf("Expected save name garden, got %q", cfg.SaveName)
	}
	if cfg.SaveInterval != time.Minute {
		t.Errorf("Expected 1m save interval, got %v", cfg.SaveInterval)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := Default()
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected warn level, got %q", cfg.LogLevel)
	}
	if cfg.TickInterval != def.TickInterval || cfg.ContentDir != def.ContentDir || cfg.SaveName != def.SaveName {
		t.Error("Expected unspecified keys to keep defaults")
	}
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, `tick_interval = "soon"`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unparseable duration")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/grove.toml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative tick", func(c *Config) { c.TickInterval = -time.Second }},
		{"negative save interval", func(c *Config) { c.SaveInterval = -time.Second }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidateAllowsZeroSaveInterval(t *testing.T) {
	cfg := Default()
	cfg.SaveInterval = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected zero save interval (disabled) to validate, got %v", err)
	}
}
