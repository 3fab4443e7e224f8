// Package config loads, validates, and watches the tabwell configuration.
package config

import "strings"

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"

	// Tabs defaults
	defaultSwitchToNewWhenOpened = true
	defaultRecentlyClosedLimit   = 25

	// Demo shell defaults
	defaultDemoWindows = 2
	maxDemoWindows     = 4
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Tabs    TabsConfig    `mapstructure:"tabs" yaml:"tabs" toml:"tabs"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo" toml:"demo"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// TabsConfig controls strip behavior.
type TabsConfig struct {
	// SwitchToNewWhenOpened selects a newly opened tab immediately. When
	// false the cursor stays put unless there was no selection at all.
	SwitchToNewWhenOpened bool `mapstructure:"switch_to_new_when_opened" yaml:"switch_to_new_when_opened" toml:"switch_to_new_when_opened"`

	// RecentlyClosedLimit caps the reopen-closed store.
	RecentlyClosedLimit int `mapstructure:"recently_closed_limit" yaml:"recently_closed_limit" toml:"recently_closed_limit"`
}

// DemoConfig controls the demo shell.
type DemoConfig struct {
	// Windows is the number of windows the demo opens (1..4).
	Windows int `mapstructure:"windows" yaml:"windows" toml:"windows"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Tabs: TabsConfig{
			SwitchToNewWhenOpened: defaultSwitchToNewWhenOpened,
			RecentlyClosedLimit:   defaultRecentlyClosedLimit,
		},
		Demo: DemoConfig{
			Windows: defaultDemoWindows,
		},
	}
}

func normalizeConfig(config *Config) {
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "error":
		config.Logging.Level = strings.ToLower(config.Logging.Level)
	default:
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "console":
		config.Logging.Format = strings.ToLower(config.Logging.Format)
	default:
		config.Logging.Format = defaultLogFormat
	}

	if config.Tabs.RecentlyClosedLimit <= 0 {
		config.Tabs.RecentlyClosedLimit = defaultRecentlyClosedLimit
	}

	if config.Demo.Windows < 1 {
		config.Demo.Windows = defaultDemoWindows
	}
	if config.Demo.Windows > maxDemoWindows {
		config.Demo.Windows = maxDemoWindows
	}
}
