// filepath: internal/config/config.go
package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Uploads  UploadsConfig  `toml:"uploads"`
	Session  SessionConfig  `toml:"session"`
	Logging  LoggingConfig  `toml:"logging"`

	AdminPassword string `toml:"-"` // Not loaded from file, set by CLI/env

	MaxUploadBytes int64 `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// UploadsConfig holds settings for uploaded image storage.
type UploadsConfig struct {
	Root          string `toml:"root"`
	PublicPrefix  string `toml:"public_prefix"`   // URL prefix the uploads root is served under
	MaxUploadSize string `toml:"max_upload_size"` // e.g. "16MB", "512KB"
}

// SessionConfig holds settings for the admin session cookie.
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	TTLHours   int    `toml:"ttl_hours"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Database.Path == "" {
		c.Database.Path = "studiohub.db"
	}
	if c.Uploads.Root == "" {
		c.Uploads.Root = "static/uploads"
	}
	if c.Uploads.PublicPrefix == "" {
		c.Uploads.PublicPrefix = "/static/uploads"
	}
	if c.Uploads.MaxUploadSize == "" {
		c.Uploads.MaxUploadSize = "16MB"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "studiohub_admin"
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = 12
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	sizeBytes, err := parseSize(c.Uploads.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	c.MaxUploadBytes = sizeBytes

	return nil
}

// parseSize parses a size string (e.g., "16MB", "512KB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	switch unit {
	case "T":
		return value * (1 << 40), nil
	case "G":
		return value * (1 << 30), nil
	case "M":
		return value * (1 << 20), nil
	case "K":
		return value * (1 << 10), nil
	default:
		return value, nil
	}
}
