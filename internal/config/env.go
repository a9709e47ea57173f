// Package config provides application configuration.
package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration. Nested structs use
// underscore delimiter (e.g. EMBEDDING_ENDPOINT_API_KEY).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// SearchLimit is the default search result limit.
	// Env: SEARCH_LIMIT (default: 5)
	SearchLimit int `envconfig:"SEARCH_LIMIT" default:"5"`

	// SearchThreshold is the default minimum cosine similarity for semantic
	// results, in [0,1].
	// Env: SEARCH_THRESHOLD (default: 0.6)
	SearchThreshold float64 `envconfig:"SEARCH_THRESHOLD" default:"0.6"`

	// EmbeddingEndpoint configures the embedding AI service.
	EmbeddingEndpoint EndpointEnv `envconfig:"EMBEDDING_ENDPOINT"`

	// HTTPCacheDir is the directory for caching embedding API responses to
	// disk. When set, request/response pairs are cached to avoid repeated
	// API calls for the static corpus.
	// Env: HTTP_CACHE_DIR
	HTTPCacheDir string `envconfig:"HTTP_CACHE_DIR"`

	// CORSOrigins is a comma-separated list of allowed CORS origins.
	// Env: CORS_ORIGINS (default: *)
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"*"`
}

// EndpointEnv holds environment configuration for the embedding endpoint.
type EndpointEnv struct {
	// BaseURL is the base URL for the endpoint.
	// Env: EMBEDDING_ENDPOINT_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the embedding model identifier.
	// Env: EMBEDDING_ENDPOINT_MODEL (default: text-embedding-3-small)
	Model string `envconfig:"MODEL" default:"text-embedding-3-small"`

	// APIKey is the API key for authentication.
	// Env: EMBEDDING_ENDPOINT_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// Timeout is the per-call timeout in seconds.
	// Env: EMBEDDING_ENDPOINT_TIMEOUT (default: 8)
	Timeout float64 `envconfig:"TIMEOUT" default:"8"`

	// MaxInputTokens is the provider input token limit.
	// Env: EMBEDDING_ENDPOINT_MAX_INPUT_TOKENS (default: 8191)
	MaxInputTokens int `envconfig:"MAX_INPUT_TOKENS" default:"8191"`

	// NumParallelTasks bounds concurrent corpus warming requests.
	// Env: EMBEDDING_ENDPOINT_NUM_PARALLEL_TASKS (default: 4)
	NumParallelTasks int `envconfig:"NUM_PARALLEL_TASKS" default:"4"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	opts := []AppConfigOption{
		WithHost(e.Host),
		WithPort(e.Port),
		WithLogLevel(e.LogLevel),
		WithLogFormat(parseLogFormat(e.LogFormat)),
		WithSearchLimit(e.SearchLimit),
		WithSearchThreshold(e.SearchThreshold),
		WithCORSOrigins(splitCommaList(e.CORSOrigins)),
	}

	if e.EmbeddingEndpoint.IsConfigured() {
		opts = append(opts, WithEmbeddingEndpoint(e.EmbeddingEndpoint.ToEndpoint()))
	}

	if e.HTTPCacheDir != "" {
		opts = append(opts, WithHTTPCacheDir(e.HTTPCacheDir))
	}

	return NewAppConfigWithOptions(opts...)
}

// IsConfigured returns true if the endpoint has an API key configured.
func (e EndpointEnv) IsConfigured() bool {
	return e.APIKey != ""
}

// ToEndpoint converts EndpointEnv to Endpoint.
func (e EndpointEnv) ToEndpoint() Endpoint {
	opts := []EndpointOption{
		WithModel(e.Model),
		WithAPIKey(e.APIKey),
		WithTimeout(time.Duration(e.Timeout * float64(time.Second))),
		WithMaxInputTokens(e.MaxInputTokens),
		WithNumParallelTasks(e.NumParallelTasks),
	}
	if e.BaseURL != "" {
		opts = append(opts, WithBaseURL(e.BaseURL))
	}
	return NewEndpointWithOptions(opts...)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

// splitCommaList splits a comma-separated string, trimming whitespace and
// dropping empty entries.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
