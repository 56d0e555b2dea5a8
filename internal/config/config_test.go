package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("default invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("TODOLIST_THEME", "")
	p := writeFile(t, `
theme = "neon"
list_selector = "#main"
alt_screen = false
log_level = "debug"
log_file = "/tmp/todolist.log"
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "neon" || cfg.ListSelector != "#main" || cfg.AltScreen || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.ToggleSelector != ".hide-cancelled" {
		t.Fatalf("default not kept: %q", cfg.ToggleSelector)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	p := writeFile(t, `colour = "red"`)
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeFile(t, `theme = "neon"`)
	t.Setenv("TODOLIST_THEME", "mono")
	t.Setenv("TODOLIST_ALT_SCREEN", "false")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "mono" || cfg.AltScreen {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestEnvBadBool(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := loadEnv(&cfg, func(k string) (string, bool) {
		if k == "TODOLIST_ALT_SCREEN" {
			return "maybe", true
		}
		return "", false
	})
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"upper theme", func(c *Config) { c.Theme = "NEON" }, true},
		{"bad theme", func(c *Config) { c.Theme = "pink" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, false},
		{"empty list", func(c *Config) { c.ListSelector = " " }, false},
		{"empty toggle", func(c *Config) { c.ToggleSelector = "" }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			if err := cfg.Validate(); (err == nil) != c.ok {
				t.Fatalf("Validate() = %v, ok=%v", err, c.ok)
			}
		})
	}
}
