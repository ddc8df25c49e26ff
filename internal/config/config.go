// Package config loads the shell's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"galion/internal/apps"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "GALION_CONFIG"
	// DefaultPath is relative to the user's home directory.
	DefaultPath = ".config/galion/config.toml"
)

type Config struct {
	OSName      string         `toml:"os_name"`
	StatusItems []string       `toml:"status_items"`
	Clock       ClockConfig    `toml:"clock"`
	Calendar    CalendarConfig `toml:"calendar"`
	Launcher    LauncherConfig `toml:"launcher"`
	Tracing     TracingConfig  `toml:"tracing"`
}

type ClockConfig struct {
	TimeLayout string `toml:"time_layout"`
	DateLayout string `toml:"date_layout"`
}

type CalendarConfig struct {
	CacheSize int `toml:"cache_size"` // rendered month grids kept in memory
}

type LauncherConfig struct {
	DoubleClickMs int        `toml:"double_click_ms"`
	Apps          []apps.App `toml:"apps"`
}

type TracingConfig struct {
	ServiceName string `toml:"service_name"`
}

// DoubleClick returns the double-press window.
func (c LauncherConfig) DoubleClick() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

var DefaultConfig = Config{
	OSName:      "Galion OS",
	StatusItems: []string{"WiFi", "Battery", "Sound"},
	Clock: ClockConfig{
		TimeLayout: "15:04:05",
		DateLayout: "Monday, January 2, 2006",
	},
	Calendar: CalendarConfig{CacheSize: 24},
	Launcher: LauncherConfig{DoubleClickMs: 500},
	Tracing:  TracingConfig{ServiceName: "galion"},
}

// ResolvePath picks the config path: explicit flag, then $GALION_CONFIG,
// then ~/.config/galion/config.toml.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultPath)
}

// LoadConfig reads path. A missing file yields DefaultConfig. Keys absent
// from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig
	cfg.StatusItems = append([]string(nil), DefaultConfig.StatusItems...)

	expanded := expandPath(path)
	if expanded == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(expanded)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", expanded, err)
	}
	return &cfg, nil
}

func LoadAndValidateConfig(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SaveConfig writes cfg as TOML, creating parent directories.
func SaveConfig(cfg *Config, path string) error {
	expanded := expandPath(path)
	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(expanded, data, 0644)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.OSName) == "" {
		return fmt.Errorf("os_name must not be empty")
	}
	if c.Clock.TimeLayout == "" || c.Clock.DateLayout == "" {
		return fmt.Errorf("clock layouts must not be empty")
	}
	if c.Calendar.CacheSize <= 0 {
		return fmt.Errorf("calendar.cache_size must be positive, got %d", c.Calendar.CacheSize)
	}
	if c.Launcher.DoubleClickMs <= 0 {
		return fmt.Errorf("launcher.double_click_ms must be positive, got %d", c.Launcher.DoubleClickMs)
	}
	seen := make(map[int]bool, len(c.Launcher.Apps))
	for _, a := range c.Launcher.Apps {
		if a.Name == "" {
			return fmt.Errorf("launcher app %d has no name", a.ID)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate launcher app id %d", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}
