// Package semsearch provides embedding-based semantic search over a small,
// in-process corpus of marketing content.
//
// Queries are matched against the corpus by cosine similarity of text
// embeddings, with a configurable score threshold and result limit. When the
// embedding provider is unreachable, or no item clears the threshold, search
// degrades to naive keyword matching rather than failing.
//
// Basic usage:
//
//	client, err := semsearch.New(
//	    semsearch.WithOpenAI(os.Getenv("EMBEDDING_ENDPOINT_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Search.Search(ctx, search.NewQuery("ai personalization", 5, 0.6))
//	for _, result := range resp.Results() {
//	    fmt.Println(result.Item().Title())
//	}
package semsearch

import (
	"github.com/agenticlabs/semsearch/application/service"
	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

// Client is the main entry point for the semsearch library.
//
// Access the search service via the Search field:
//
//	client.Search.Search(ctx, query)
type Client struct {
	// Search is the search orchestrator.
	Search *service.SearchService

	config config.AppConfig
	corpus *content.Corpus
	logger *log.Logger
}

// New creates a Client. Without options it serves the built-in corpus in
// degraded mode (no embedding provider); configure a provider with
// WithOpenAI or WithEmbedder.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = log.NewLogger(cfg.appConfig)
	}

	corpus := cfg.corpus
	if corpus == nil {
		corpus = content.DefaultCorpus()
	}

	embedder, err := cfg.buildEmbedder()
	if err != nil {
		return nil, err
	}

	svcOpts := []service.SearchServiceOption{
		service.WithDefaultLimit(cfg.appConfig.SearchLimit()),
		service.WithDefaultThreshold(cfg.appConfig.SearchThreshold()),
	}
	if embedder != nil {
		manager := service.NewCorpusManager(corpus, embedder, logger,
			service.WithParallelTasks(cfg.parallelTasks),
		)
		svcOpts = append(svcOpts, service.WithCorpusManager(manager))
	}
	searchSvc := service.NewSearchService(corpus, embedder, logger, svcOpts...)

	return &Client{
		Search: searchSvc,
		config: cfg.appConfig,
		corpus: corpus,
		logger: logger,
	}, nil
}

// Config returns the effective application configuration.
func (c *Client) Config() config.AppConfig {
	return c.config
}

// Corpus returns the content corpus.
func (c *Client) Corpus() *content.Corpus {
	return c.corpus
}

// Logger returns the client's logger.
func (c *Client) Logger() *log.Logger {
	return c.logger
}
