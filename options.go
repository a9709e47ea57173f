package semsearch

import (
	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/infrastructure/provider"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	appConfig     config.AppConfig
	corpus        *content.Corpus
	embedder      search.Embedder
	logger        *log.Logger
	parallelTasks int
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		appConfig:     config.NewAppConfig(),
		parallelTasks: config.DefaultParallelTasks,
	}
}

// buildEmbedder resolves the embedder to use: an explicitly injected one
// wins, then a configured embedding endpoint. Nil means degraded mode.
func (c *clientConfig) buildEmbedder() (search.Embedder, error) {
	if c.embedder != nil {
		return c.embedder, nil
	}

	endpoint := c.appConfig.EmbeddingEndpoint()
	if endpoint == nil || !endpoint.IsConfigured() {
		return nil, nil
	}

	p := provider.NewOpenAIProviderFromConfig(provider.OpenAIConfig{
		APIKey:         endpoint.APIKey(),
		BaseURL:        endpoint.BaseURL(),
		EmbeddingModel: endpoint.Model(),
		Timeout:        endpoint.Timeout(),
		MaxInputTokens: endpoint.MaxInputTokens(),
		CacheDir:       c.appConfig.HTTPCacheDir(),
	})
	return provider.NewEmbedder(p), nil
}

// Option configures the Client.
type Option func(*clientConfig)

// WithConfig sets the full application configuration, as loaded by
// config.LoadConfig. The embedding endpoint inside it, if configured, is
// used to build the provider.
func WithConfig(cfg config.AppConfig) Option {
	return func(c *clientConfig) {
		c.appConfig = cfg
		if endpoint := cfg.EmbeddingEndpoint(); endpoint != nil {
			c.parallelTasks = endpoint.NumParallelTasks()
		}
	}
}

// WithOpenAI configures an OpenAI embedding provider with the given API key
// and default model and limits.
func WithOpenAI(apiKey string) Option {
	return func(c *clientConfig) {
		c.appConfig = c.appConfig.Apply(config.WithEmbeddingEndpoint(
			config.NewEndpointWithOptions(
				config.WithAPIKey(apiKey),
				config.WithModel(provider.DefaultEmbeddingModel),
			),
		))
	}
}

// WithEmbedder injects an embedder directly, bypassing provider
// construction. Useful for tests.
func WithEmbedder(e search.Embedder) Option {
	return func(c *clientConfig) { c.embedder = e }
}

// WithCorpus replaces the built-in content corpus.
func WithCorpus(corpus *content.Corpus) Option {
	return func(c *clientConfig) { c.corpus = corpus }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// WithSearchLimit sets the default result limit.
func WithSearchLimit(n int) Option {
	return func(c *clientConfig) {
		c.appConfig = c.appConfig.Apply(config.WithSearchLimit(n))
	}
}

// WithSearchThreshold sets the default similarity threshold.
func WithSearchThreshold(t float64) Option {
	return func(c *clientConfig) {
		c.appConfig = c.appConfig.Apply(config.WithSearchThreshold(t))
	}
}
