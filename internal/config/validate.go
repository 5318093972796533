package config

import (
	"fmt"
	"os"
)

// Validate enforces the fail-fast rules SPEC_FULL.md §6 requires: an
// enabled provider missing its required token is a startup error; a
// disabled provider's missing token is not.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	if c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required")
	}

	providers := map[string]ProviderConfig{
		"news":    c.Providers.News,
		"video":   c.Providers.Video,
		"ratings": c.Providers.Ratings,
		"artist":  c.Providers.Artist,
		"album":   c.Providers.Album,
	}
	for name, p := range providers {
		if !p.Enabled {
			continue
		}
		if p.BaseURL == "" {
			return fmt.Errorf("config: providers.%s.base_url is required when enabled", name)
		}
		if p.TokenEnvVar != "" && os.Getenv(p.TokenEnvVar) == "" {
			return fmt.Errorf("config: providers.%s requires env var %s to be set", name, p.TokenEnvVar)
		}
	}
	return nil
}

// Token resolves a provider's credential from its configured env var.
func (p ProviderConfig) Token() string {
	if p.TokenEnvVar == "" {
		return ""
	}
	return os.Getenv(p.TokenEnvVar)
}
