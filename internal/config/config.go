package config

import "time"

// Config is the fully-resolved, validated application configuration
// (C14), assembled by layering defaults, an optional YAML file, and
// environment variables (see koanf.go).
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Redis     RedisConfig     `koanf:"redis"`
	Registry  RegistryConfig  `koanf:"registry"`
	Providers ProvidersConfig `koanf:"providers"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Security  SecurityConfig  `koanf:"security"`
	Log       LogConfig       `koanf:"log"`
}

// ServerConfig holds the HTTP listener settings (C13).
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// RedisConfig holds the RediSearch connection pool settings (C17).
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

// RegistryConfig holds the persisted cache-version registry path (C18).
type RegistryConfig struct {
	BadgerPath string `koanf:"badger_path"`
}

// ProviderConfig is one brokered source's connection settings (C6).
type ProviderConfig struct {
	Enabled     bool          `koanf:"enabled"`
	BaseURL     string        `koanf:"base_url"`
	TokenEnvVar string        `koanf:"token_env_var"`
	Timeout     time.Duration `koanf:"timeout"`
	RatePerSec  float64       `koanf:"rate_per_sec"`
	Burst       int           `koanf:"burst"`
}

// ProvidersConfig groups every brokered source's settings.
type ProvidersConfig struct {
	News    ProviderConfig `koanf:"news"`
	Video   ProviderConfig `koanf:"video"`
	Ratings ProviderConfig `koanf:"ratings"`
	Artist  ProviderConfig `koanf:"artist"`
	Album   ProviderConfig `koanf:"album"`
}

// RateLimitConfig guards the public autocomplete/search endpoints
// independent of client-side debouncing (SPEC_FULL.md §9).
type RateLimitConfig struct {
	RequestsPerMinute int `koanf:"requests_per_minute"`
}

// SecurityConfig holds CORS settings for the public API.
type SecurityConfig struct {
	CORSOrigins []string `koanf:"cors_origins"`
}

// LogConfig holds structured-logging settings (C15).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
