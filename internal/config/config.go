package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bitacora/mediafeed/internal/media"
)

// Config holds all configuration for the application
type Config struct {
	// Upstream settings
	APIKey    string
	ChannelID string
	Groups    []media.Group

	// File paths
	GroupsCSVPath string

	// Fetch settings
	PageSize     int64
	FetchTimeout time.Duration

	// Server settings
	ServerHost   string
	ServerPort   int
	ServerAPIKey string

	// Log settings
	LogLevel zerolog.Level
}

// DefaultConfig returns an initial configuration with hardcoded defaults.
// The upstream API key has no default and must come from the environment
// or a flag.
func DefaultConfig() *Config {
	logLevel, _ := zerolog.ParseLevel(DefaultLogLevel)

	return &Config{
		APIKey:        GetEnvString("MEDIAFEED_API_KEY", ""),
		ChannelID:     DefaultChannelID,
		Groups:        DefaultGroups(),
		GroupsCSVPath: DefaultGroupsCSVPath,
		PageSize:      DefaultPageSize,
		FetchTimeout:  DefaultFetchTimeout,
		ServerHost:    DefaultServerHost,
		ServerPort:    DefaultServerPort,
		ServerAPIKey:  GetEnvString("MEDIAFEED_SERVER_API_KEY", ""),
		LogLevel:      logLevel,
	}
}

// Validate checks that the configuration is usable for fetching.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("upstream API key is required (flag -key or env MEDIAFEED_API_KEY)")
	}
	if c.ChannelID == "" && len(c.Groups) == 0 {
		return fmt.Errorf("at least one playlist group or a channel ID is required")
	}
	if c.PageSize <= 0 || c.PageSize > MaxPageSize {
		return fmt.Errorf("page size must be between 1 and %d", MaxPageSize)
	}
	return nil
}

// ListenAddr returns the formatted listen address for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}
