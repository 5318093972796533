package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in
// priority order. The first one found is used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mediasearch/config.yaml",
	"/etc/mediasearch/config.yml",
}

// ConfigPathEnvVar overrides the config file search with an explicit path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Redis: RedisConfig{
			Addr:     "127.0.0.1:6379",
			DB:       0,
			PoolSize: 10,
		},
		Registry: RegistryConfig{
			BadgerPath: "/data/mediasearch/registry",
		},
		Providers: ProvidersConfig{
			News:    ProviderConfig{Enabled: false, Timeout: 2500 * time.Millisecond, RatePerSec: 5, Burst: 5},
			Video:   ProviderConfig{Enabled: false, Timeout: 2500 * time.Millisecond, RatePerSec: 5, Burst: 5},
			Ratings: ProviderConfig{Enabled: false, Timeout: 2500 * time.Millisecond, RatePerSec: 5, Burst: 5},
			Artist:  ProviderConfig{Enabled: false, Timeout: 2500 * time.Millisecond, RatePerSec: 5, Burst: 5},
			Album:   ProviderConfig{Enabled: false, Timeout: 2500 * time.Millisecond, RatePerSec: 5, Burst: 5},
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 120},
		Security:  SecurityConfig{CORSOrigins: []string{"*"}},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

// Load layers defaults, an optional YAML config file, and environment
// variables (highest priority) exactly in that order, then validates the
// result (SPEC_FULL.md §10 "Configuration").
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("config: process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps each supported environment variable (lowercased, as
// koanf's env provider hands it to the transform func) to its koanf
// config path. An explicit table, rather than a generic underscore-to-dot
// rule, because several paths (e.g. "providers.news.base_url") have more
// underscore-joined segments than dots.
var envMappings = map[string]string{
	"server_host":             "server.host",
	"server_port":             "server.port",
	"server_read_timeout":     "server.read_timeout",
	"server_write_timeout":    "server.write_timeout",
	"server_idle_timeout":     "server.idle_timeout",
	"server_shutdown_timeout": "server.shutdown_timeout",

	"redis_addr":      "redis.addr",
	"redis_password":  "redis.password",
	"redis_db":        "redis.db",
	"redis_pool_size": "redis.pool_size",

	"registry_badger_path": "registry.badger_path",

	"providers_news_enabled":      "providers.news.enabled",
	"providers_news_base_url":     "providers.news.base_url",
	"providers_news_token_env":    "providers.news.token_env_var",
	"providers_news_timeout":      "providers.news.timeout",
	"providers_news_rate_per_sec": "providers.news.rate_per_sec",

	"providers_video_enabled":      "providers.video.enabled",
	"providers_video_base_url":     "providers.video.base_url",
	"providers_video_token_env":    "providers.video.token_env_var",
	"providers_video_timeout":      "providers.video.timeout",
	"providers_video_rate_per_sec": "providers.video.rate_per_sec",

	"providers_ratings_enabled":      "providers.ratings.enabled",
	"providers_ratings_base_url":     "providers.ratings.base_url",
	"providers_ratings_token_env":    "providers.ratings.token_env_var",
	"providers_ratings_timeout":      "providers.ratings.timeout",
	"providers_ratings_rate_per_sec": "providers.ratings.rate_per_sec",

	"providers_artist_enabled":      "providers.artist.enabled",
	"providers_artist_base_url":     "providers.artist.base_url",
	"providers_artist_token_env":    "providers.artist.token_env_var",
	"providers_artist_timeout":      "providers.artist.timeout",
	"providers_artist_rate_per_sec": "providers.artist.rate_per_sec",

	"providers_album_enabled":      "providers.album.enabled",
	"providers_album_base_url":     "providers.album.base_url",
	"providers_album_token_env":    "providers.album.token_env_var",
	"providers_album_timeout":      "providers.album.timeout",
	"providers_album_rate_per_sec": "providers.album.rate_per_sec",

	"ratelimit_requests_per_minute": "ratelimit.requests_per_minute",

	"security_cors_origins": "security.cors_origins",

	"log_level":  "log.level",
	"log_format": "log.format",
}

func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return strings.ReplaceAll(key, "_", ".")
}

// sliceConfigPaths lists config paths that arrive from the environment as
// comma-separated strings but must unmarshal as slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}
		str, ok := val.(string)
		if !ok {
			continue
		}
		parts := strings.Split(str, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if err := k.Set(path, parts); err != nil {
			return err
		}
	}
	return nil
}
