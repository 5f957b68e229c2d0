// Package config loads note-portal configuration with priority:
// defaults -> TOML file(s) -> NOTEGEN_* environment -> CLI flags.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Market   MarketConfig   `toml:"market"`
	Mail     MailConfig     `toml:"mail"`
	Document DocumentConfig `toml:"document"`
	Session  SessionConfig  `toml:"session"`
	Logging  LoggingConfig  `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// MarketConfig contains price-data fetch settings.
type MarketConfig struct {
	BaseURL        string `toml:"base_url"`
	DefaultSuffix  string `toml:"default_suffix"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// MailConfig contains mail handoff settings. CC maps note-type display names
// to the address copied for that type.
type MailConfig struct {
	Recipient string            `toml:"recipient"`
	CC        map[string]string `toml:"cc"`
}

// DocumentConfig contains document-level settings stamped into every note.
type DocumentConfig struct {
	Organization string `toml:"organization"`
	FooterText   string `toml:"footer_text"`
	BodyFont     string `toml:"body_font"`
	BodySize     int    `toml:"body_size"` // half-points
}

// SessionConfig contains chart session store settings.
type SessionConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
	MaxEntries int `toml:"max_entries"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level    string `toml:"level"`
	FilePath string `toml:"file_path"`
}

// LoadFromFiles loads configuration from multiple files; later files override
// earlier ones, environment variables override all files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies NOTEGEN_* environment variable overrides.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("NOTEGEN_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("NOTEGEN_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if base := os.Getenv("NOTEGEN_MARKET_URL"); base != "" {
		config.Market.BaseURL = base
	}
	if suffix := os.Getenv("NOTEGEN_MARKET_SUFFIX"); suffix != "" {
		config.Market.DefaultSuffix = suffix
	}
	if recipient := os.Getenv("NOTEGEN_MAIL_RECIPIENT"); recipient != "" {
		config.Mail.Recipient = recipient
	}
	if level := os.Getenv("NOTEGEN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate reports configuration issues that prevent startup.
func (c *Config) Validate() []string {
	var issues []string
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Market.BaseURL == "" {
		issues = append(issues, "market.base_url is empty")
	}
	if c.Mail.Recipient == "" {
		issues = append(issues, "mail.recipient is empty")
	}
	return issues
}
