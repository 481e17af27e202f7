package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents configuration data for the check-in monitor.
type Config struct {
	Addr                string       `yaml:"addr" mapstructure:"addr"`
	HistoryLimit        int          `yaml:"history_limit" mapstructure:"history_limit"`
	TimelinePoints      int          `yaml:"timeline_points" mapstructure:"timeline_points"`
	TimelineHours       int          `yaml:"timeline_hours" mapstructure:"timeline_hours"`
	PushIntervalSeconds int          `yaml:"push_interval_seconds" mapstructure:"push_interval_seconds"`
	Theme               ThemeConfig  `yaml:"theme" mapstructure:"theme"`
	Locale              LocaleConfig `yaml:"locale" mapstructure:"locale"`
	Log                 LogConfig    `yaml:"log" mapstructure:"log"`
}

// ThemeConfig selects the palette used to resolve tick colors.
type ThemeConfig struct {
	Default   string `yaml:"default" mapstructure:"default"`
	Directory string `yaml:"directory" mapstructure:"directory"`
}

// LocaleConfig points at the translation catalogs.
type LocaleConfig struct {
	Directory string `yaml:"directory" mapstructure:"directory"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultConfig returns sensible defaults in case no configuration file is provided.
func DefaultConfig() Config {
	return Config{
		Addr:                ":8080",
		HistoryLimit:        1000,
		TimelinePoints:      48,
		TimelineHours:       24,
		PushIntervalSeconds: 60,
		Theme:               ThemeConfig{Default: "light"},
		Log:                 LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from yaml file. Missing files fall back to defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize replaces unset values with defaults and rejects invalid settings.
func (c *Config) Normalize() error {
	defaults := DefaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = defaults.HistoryLimit
	}
	if c.TimelinePoints <= 0 {
		c.TimelinePoints = defaults.TimelinePoints
	}
	if c.TimelineHours <= 0 {
		c.TimelineHours = defaults.TimelineHours
	}
	if c.PushIntervalSeconds <= 0 {
		c.PushIntervalSeconds = defaults.PushIntervalSeconds
	}
	if c.Theme.Default == "" {
		c.Theme.Default = defaults.Theme.Default
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log format %q must be text or json", c.Log.Format)
	}
	if c.TimelinePoints > 1440 {
		return fmt.Errorf("timeline_points %d exceeds 1440", c.TimelinePoints)
	}
	return nil
}
