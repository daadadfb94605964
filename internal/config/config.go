// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete configuration.
type Config struct {
	Store     StoreConfig     `mapstructure:"store" yaml:"store"`
	Countdown CountdownConfig `mapstructure:"countdown" yaml:"countdown"`
	Reminders ReminderConfig  `mapstructure:"reminders" yaml:"reminders"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// StoreConfig locates the SQLite database backing the record store.
type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path"` // empty means ~/.prazo/prazo.db
}

// CountdownConfig tunes the client deadline countdown.
type CountdownConfig struct {
	OffsetDays int `mapstructure:"offset_days" yaml:"offset_days"` // calendar days added to the start date
}

// ReminderConfig tunes the due-task reminder loop.
type ReminderConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"` // poll interval for --watch
	Bell     bool          `mapstructure:"bell" yaml:"bell"`         // ring the terminal bell on delivery
}

// LoggingConfig controls service use-case logging.
type LoggingConfig struct {
	UseCases bool `mapstructure:"use_cases" yaml:"use_cases"` // log service use cases to stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Countdown: CountdownConfig{OffsetDays: 30},
		Reminders: ReminderConfig{Interval: time.Minute, Bell: true},
	}
}

// Dir returns the prazo home directory, honoring PRAZO_HOME.
func Dir() (string, error) {
	if dir := os.Getenv("PRAZO_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".prazo"), nil
}

// Load reads config.yaml from the prazo home directory, falling back to
// defaults when the file is absent. PRAZO_HOME relocates the directory and
// PRAZO_STORE_PATH overrides the database path.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		v := viper.New()
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if p := os.Getenv("PRAZO_STORE_PATH"); p != "" {
		cfg.Store.Path = p
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(dir, "prazo.db")
	}
	if cfg.Countdown.OffsetDays <= 0 {
		cfg.Countdown.OffsetDays = 30
	}
	if cfg.Reminders.Interval <= 0 {
		cfg.Reminders.Interval = time.Minute
	}

	return cfg, nil
}
