package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete dishboard configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the remote restaurant API is reached
type APIConfig struct {
	// BaseURL is the base path of the restaurant API (default: http://localhost:5000/api)
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout in seconds (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// DebounceMs is the search settle window in milliseconds (default: 300).
	// A remote search fires only after the search text has been stable this long.
	DebounceMs int `mapstructure:"debounce_ms"`
	// PlaceholderImage is the text shown when a menu item has no image URL
	PlaceholderImage string `mapstructure:"placeholder_image"`
	// AltScreen runs the TUI on the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty means logs go to
	// {config dir}/dishboard.log while the TUI is running.
	File string `mapstructure:"file"`
}

// Default returns a Config populated with default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000/api",
			TimeoutSeconds: 10,
		},
		TUI: TUIConfig{
			DebounceMs:       300,
			PlaceholderImage: "(no image)",
			AltScreen:        true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Timeout returns the API request timeout as a time.Duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DebounceInterval returns the search settle window as a time.Duration
func (c *TUIConfig) DebounceInterval() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// LogFile returns the resolved log file path
func (c *LoggingConfig) LogFile() string {
	if c.File != "" {
		return c.File
	}
	return filepath.Join(ConfigDir(), "dishboard.log")
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)

	viper.SetDefault("tui.debounce_ms", defaults.TUI.DebounceMs)
	viper.SetDefault("tui.placeholder_image", defaults.TUI.PlaceholderImage)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dishboard")
	}
	// Fall back to ~/.config/dishboard
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dishboard"
	}
	return filepath.Join(home, ".config", "dishboard")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
