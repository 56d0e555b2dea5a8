// Package config loads todolist settings from defaults, a TOML file and the
// environment. Command-line flags are applied last by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	envPrefix = "TODOLIST_"
	fileName  = "config.toml"
)

// Themes lists the accepted theme names.
var Themes = []string{"classic", "neon", "mono"}

// LogLevels lists the accepted log levels. "off" discards everything.
var LogLevels = []string{"debug", "info", "warn", "error", "off"}

type Config struct {
	Page           string `toml:"page"` // HTML page to mount on; empty uses the built-in one
	Theme          string `toml:"theme"`
	ListSelector   string `toml:"list_selector"`
	ToggleSelector string `toml:"toggle_selector"`
	AltScreen      bool   `toml:"alt_screen"`
	LogLevel       string `toml:"log_level"`
	LogFile        string `toml:"log_file"`
}

func Default() Config {
	return Config{
		Theme:          "classic",
		ListSelector:   ".todo-list",
		ToggleSelector: ".hide-cancelled",
		AltScreen:      true,
		LogLevel:       "off",
	}
}

// Load applies, in order: defaults, the config file, TODOLIST_* variables.
// An explicit path must exist; the default path is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/todolist/config.toml or the OS equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "todolist", fileName)
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	str("PAGE", &cfg.Page)
	str("THEME", &cfg.Theme)
	str("LIST_SELECTOR", &cfg.ListSelector)
	str("TOGGLE_SELECTOR", &cfg.ToggleSelector)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FILE", &cfg.LogFile)

	if v, ok := lookup(envPrefix + "ALT_SCREEN"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sALT_SCREEN: %w", envPrefix, err)
		}
		cfg.AltScreen = b
	}
	return nil
}

// Validate checks enumerated fields and required selectors.
func (c Config) Validate() error {
	if !oneOf(c.Theme, Themes) {
		return fmt.Errorf("theme %q: must be one of %s", c.Theme, strings.Join(Themes, ", "))
	}
	if !oneOf(c.LogLevel, LogLevels) {
		return fmt.Errorf("log level %q: must be one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if strings.TrimSpace(c.ListSelector) == "" {
		return errors.New("list selector is empty")
	}
	if strings.TrimSpace(c.ToggleSelector) == "" {
		return errors.New("toggle selector is empty")
	}
	return nil
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
