// Package config holds the optional settings file of the expo command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/exposure"
	"github.com/etnz/exposure/date"
	"gopkg.in/yaml.v3"
)

// Config represents the complete dashboard configuration.
type Config struct {
	// Adviser is the heading of the dashboard.
	Adviser string `yaml:"adviser"`
	// File is the exposure spreadsheet, .xlsx or .csv.
	File string `yaml:"file"`
	// Sheet is the spreadsheet sheet to read, the first one when empty.
	Sheet string `yaml:"sheet,omitempty"`
	// Currency is the ISO 4217 code of the amounts.
	Currency string `yaml:"currency"`
	// WindowDays is the length of the default maturity window.
	WindowDays int `yaml:"window_days"`
	// Timeline is the bucket size of the maturity timeline: daily, weekly, monthly or quarterly.
	Timeline string       `yaml:"timeline"`
	Server   ServerConfig `yaml:"server"`
	Log      LogConfig    `yaml:"log"`
}

// ServerConfig contains the web dashboard parameters.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins,omitempty"`
	CacheSize   int      `yaml:"cache_size"` // CSV encodings kept in memory
}

// LogConfig contains logging and tracing parameters.
type LogConfig struct {
	Mode    string `yaml:"mode"` // "dev", "prod" or "off"
	Tracing bool   `yaml:"tracing"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Adviser:    "Exposure Dashboard",
		File:       "exposure.xlsx",
		Currency:   "USD",
		WindowDays: exposure.DefaultWindowDays,
		Timeline:   date.Weekly.String(),
		Server: ServerConfig{
			Addr:      ":8080",
			CacheSize: 128,
		},
		Log: LogConfig{Mode: "off"},
	}
}

// LoadFromFile loads the configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Load is LoadFromFile, except that a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := LoadFromFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// SaveToFile saves the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.WindowDays < 0 {
		return fmt.Errorf("window_days must not be negative")
	}
	if _, err := date.ParsePeriod(c.Timeline); err != nil {
		return fmt.Errorf("timeline: %w", err)
	}
	switch strings.ToLower(c.Log.Mode) {
	case "", "off", "dev", "development", "prod", "production":
	default:
		return fmt.Errorf("log.mode must be 'dev', 'prod' or 'off'")
	}
	if c.Server.CacheSize < 0 {
		return fmt.Errorf("server.cache_size must not be negative")
	}
	return nil
}

// Period returns the timeline period.
func (c *Config) Period() date.Period {
	p, _ := date.ParsePeriod(c.Timeline)
	return p
}

// Options returns the dashboard options set by the configuration.
func (c *Config) Options() []exposure.Option {
	opts := []exposure.Option{exposure.WithTimelinePeriod(c.Period())}
	if c.Sheet != "" {
		opts = append(opts, exposure.WithSheet(c.Sheet))
	}
	return opts
}

// Selection returns the default selection for today, with the configured
// window length.
func (c *Config) Selection(today date.Date) exposure.Selection {
	sel := exposure.DefaultSelection(today)
	sel.Window = date.Days(today, c.WindowDays)
	return sel
}
