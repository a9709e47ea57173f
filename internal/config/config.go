// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Default configuration values.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultLogLevel        = "INFO"
	DefaultSearchLimit     = 5
	DefaultSearchThreshold = 0.6
	DefaultEndpointTimeout = 8 * time.Second
	DefaultMaxInputTokens  = 8191
	DefaultParallelTasks   = 4
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Endpoint configures the embedding AI service endpoint.
type Endpoint struct {
	baseURL          string
	model            string
	apiKey           string
	timeout          time.Duration
	maxInputTokens   int
	numParallelTasks int
}

// NewEndpoint creates a new Endpoint with defaults.
func NewEndpoint() Endpoint {
	return Endpoint{
		timeout:          DefaultEndpointTimeout,
		maxInputTokens:   DefaultMaxInputTokens,
		numParallelTasks: DefaultParallelTasks,
	}
}

// BaseURL returns the base URL for the endpoint.
func (e Endpoint) BaseURL() string { return e.baseURL }

// Model returns the embedding model identifier.
func (e Endpoint) Model() string { return e.model }

// APIKey returns the API key.
func (e Endpoint) APIKey() string { return e.apiKey }

// Timeout returns the per-call timeout.
func (e Endpoint) Timeout() time.Duration { return e.timeout }

// MaxInputTokens returns the provider input token limit.
func (e Endpoint) MaxInputTokens() int { return e.maxInputTokens }

// NumParallelTasks returns the corpus warming parallelism bound.
func (e Endpoint) NumParallelTasks() int { return e.numParallelTasks }

// IsConfigured returns true if the endpoint has credentials.
func (e Endpoint) IsConfigured() bool {
	return e.apiKey != ""
}

// EndpointOption is a functional option for Endpoint.
type EndpointOption func(*Endpoint)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) EndpointOption {
	return func(e *Endpoint) { e.baseURL = url }
}

// WithModel sets the embedding model.
func WithModel(model string) EndpointOption {
	return func(e *Endpoint) { e.model = model }
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) EndpointOption {
	return func(e *Endpoint) { e.apiKey = key }
}

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) EndpointOption {
	return func(e *Endpoint) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithMaxInputTokens sets the provider input token limit.
func WithMaxInputTokens(n int) EndpointOption {
	return func(e *Endpoint) {
		if n > 0 {
			e.maxInputTokens = n
		}
	}
}

// WithNumParallelTasks sets the corpus warming parallelism bound.
func WithNumParallelTasks(n int) EndpointOption {
	return func(e *Endpoint) {
		if n > 0 {
			e.numParallelTasks = n
		}
	}
}

// NewEndpointWithOptions creates an Endpoint with functional options.
func NewEndpointWithOptions(opts ...EndpointOption) Endpoint {
	e := NewEndpoint()
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host              string
	port              int
	logLevel          string
	logFormat         LogFormat
	searchLimit       int
	searchThreshold   float64
	embeddingEndpoint *Endpoint
	httpCacheDir      string
	corsOrigins       []string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:            DefaultHost,
		port:            DefaultPort,
		logLevel:        DefaultLogLevel,
		logFormat:       LogFormatPretty,
		searchLimit:     DefaultSearchLimit,
		searchThreshold: DefaultSearchThreshold,
		corsOrigins:     []string{"*"},
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// SearchLimit returns the default search result limit.
func (c AppConfig) SearchLimit() int { return c.searchLimit }

// SearchThreshold returns the default minimum cosine similarity for
// semantic results.
func (c AppConfig) SearchThreshold() float64 { return c.searchThreshold }

// EmbeddingEndpoint returns the embedding endpoint config, or nil when no
// endpoint is configured.
func (c AppConfig) EmbeddingEndpoint() *Endpoint { return c.embeddingEndpoint }

// HTTPCacheDir returns the HTTP response cache directory, or "".
func (c AppConfig) HTTPCacheDir() string { return c.httpCacheDir }

// CORSOrigins returns the allowed CORS origins.
func (c AppConfig) CORSOrigins() []string {
	origins := make([]string, len(c.corsOrigins))
	copy(origins, c.corsOrigins)
	return origins
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithSearchLimit sets the default search result limit.
func WithSearchLimit(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.searchLimit = n
		}
	}
}

// WithSearchThreshold sets the default similarity threshold.
func WithSearchThreshold(t float64) AppConfigOption {
	return func(c *AppConfig) {
		if t >= 0 && t <= 1 {
			c.searchThreshold = t
		}
	}
}

// WithEmbeddingEndpoint sets the embedding endpoint.
func WithEmbeddingEndpoint(e Endpoint) AppConfigOption {
	return func(c *AppConfig) { c.embeddingEndpoint = &e }
}

// WithHTTPCacheDir sets the HTTP response cache directory.
func WithHTTPCacheDir(dir string) AppConfigOption {
	return func(c *AppConfig) { c.httpCacheDir = dir }
}

// WithCORSOrigins sets the allowed CORS origins.
func WithCORSOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		if len(origins) > 0 {
			c.corsOrigins = make([]string, len(origins))
			copy(c.corsOrigins, origins)
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration. The API
// key is shown only as presence.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("log_level", c.logLevel),
		slog.Int("search_limit", c.searchLimit),
		slog.Float64("search_threshold", c.searchThreshold),
		slog.String("embedding_base_url", c.endpointBaseURL()),
		slog.String("embedding_model", c.endpointModel()),
		slog.Bool("embedding_configured", c.embeddingEndpoint != nil && c.embeddingEndpoint.IsConfigured()),
	}
}

func (c AppConfig) endpointBaseURL() string {
	if c.embeddingEndpoint == nil {
		return "(not configured)"
	}
	return c.embeddingEndpoint.BaseURL()
}

func (c AppConfig) endpointModel() string {
	if c.embeddingEndpoint == nil {
		return "(not configured)"
	}
	return c.embeddingEndpoint.Model()
}
