/*
Package config provides layered configuration loading for the media
search service.

Configuration is assembled in three layers, each overriding the last:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (config.yaml, or CONFIG_PATH)
 3. Environment variables, mapped through an explicit table in koanf.go

# Environment Variables

	SERVER_HOST, SERVER_PORT, SERVER_READ_TIMEOUT, ...
	REDIS_ADDR, REDIS_PASSWORD, REDIS_DB, REDIS_POOL_SIZE
	REGISTRY_BADGER_PATH
	PROVIDERS_NEWS_ENABLED, PROVIDERS_NEWS_BASE_URL, PROVIDERS_NEWS_TOKEN_ENV, ...
	RATELIMIT_REQUESTS_PER_MINUTE
	SECURITY_CORS_ORIGINS
	LOG_LEVEL, LOG_FORMAT

A provider's token is never read from config directly; TOKEN_ENV names an
environment variable that cmd/server resolves once at startup, when it
builds that provider's adapter.
*/
package config
