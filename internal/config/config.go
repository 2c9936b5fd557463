// Package config loads the roster configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rusenback/roster/internal/gateway"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	User    UserConfig    `yaml:"user"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// GatewayConfig holds backend endpoints.
type GatewayConfig struct {
	DirectoryURL string        `yaml:"directory_url"`
	ChatURL      string        `yaml:"chat_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

// UserConfig identifies the signed-in user.
type UserConfig struct {
	ID int `yaml:"id"`
}

// LoggingConfig configures the log file.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// UIConfig tunes the card grid.
type UIConfig struct {
	CardHeight   int `yaml:"card_height"`
	CardMinWidth int `yaml:"card_min_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	gw := gateway.DefaultConfig()
	return &Config{
		Gateway: GatewayConfig{
			DirectoryURL: gw.DirectoryURL,
			ChatURL:      gw.ChatURL,
			Timeout:      gw.Timeout,
		},
		User: UserConfig{ID: 1},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(Dir(), "roster.log"),
		},
		UI: UIConfig{
			CardHeight:   14,
			CardMinWidth: 34,
		},
	}
}

// Dir is the directory holding the config and log files.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roster"
	}
	return filepath.Join(home, ".roster")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the UI cannot work with.
func (c *Config) Validate() error {
	if c.UI.CardHeight < 8 {
		return fmt.Errorf("ui.card_height must be at least 8, got %d", c.UI.CardHeight)
	}
	if c.UI.CardMinWidth < 16 {
		return fmt.Errorf("ui.card_min_width must be at least 16, got %d", c.UI.CardMinWidth)
	}
	if c.Gateway.Timeout < 0 {
		return fmt.Errorf("gateway.timeout must not be negative")
	}
	return nil
}

func (c *Config) GatewayConfig() gateway.Config {
	return gateway.Config{
		DirectoryURL: c.Gateway.DirectoryURL,
		ChatURL:      c.Gateway.ChatURL,
		Timeout:      c.Gateway.Timeout,
	}
}
