package service

import (
	"context"

	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/domain/search"
	infrasearch "github.com/agenticlabs/semsearch/infrastructure/search"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

// degradedSampleSize is how many corpus items a degraded response carries
// when no embedding provider is configured.
const degradedSampleSize = 3

// degradedStatus explains a degraded response to the caller.
const degradedStatus = "search is not fully configured; showing sample results"

// SearchService orchestrates content search: corpus warming, query embedding,
// cosine ranking with threshold and limit, and the keyword fallback when
// semantic search cannot run or finds nothing.
type SearchService struct {
	corpus    *content.Corpus
	manager   *CorpusManager
	embedder  search.Embedder
	matcher   infrasearch.KeywordMatcher
	logger    *log.Logger
	limit     int
	threshold float64
}

// SearchServiceOption configures a SearchService.
type SearchServiceOption func(*SearchService)

// WithDefaultLimit sets the result limit used when a query does not specify
// one.
func WithDefaultLimit(n int) SearchServiceOption {
	return func(s *SearchService) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithDefaultThreshold sets the similarity threshold used when a query does
// not specify one.
func WithDefaultThreshold(t float64) SearchServiceOption {
	return func(s *SearchService) {
		if t >= 0 && t <= 1 {
			s.threshold = t
		}
	}
}

// WithCorpusManager sets the corpus manager. Mainly useful for bounding
// warming parallelism differently from the default.
func WithCorpusManager(m *CorpusManager) SearchServiceOption {
	return func(s *SearchService) { s.manager = m }
}

// NewSearchService creates a SearchService. A nil embedder puts the service
// in degraded mode: every search returns a fixed corpus sample with an
// explanatory status instead of an error.
func NewSearchService(corpus *content.Corpus, embedder search.Embedder, logger *log.Logger, opts ...SearchServiceOption) *SearchService {
	s := &SearchService{
		corpus:    corpus,
		embedder:  embedder,
		matcher:   infrasearch.NewKeywordMatcher(),
		logger:    logger,
		limit:     config.DefaultSearchLimit,
		threshold: config.DefaultSearchThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.manager == nil && embedder != nil {
		s.manager = NewCorpusManager(corpus, embedder, logger)
	}
	return s
}

// Degraded reports whether the service runs without an embedding provider.
func (s *SearchService) Degraded() bool {
	return s.embedder == nil
}

// Search runs a query against the corpus.
//
// An invalid query fails fast with search.ErrInvalidQuery before any provider
// call. With no embedder configured the response is a degraded sample. A
// provider failure on the query embedding, or a semantic pass that clears
// nothing above the threshold, diverts to the keyword fallback rather than
// surfacing an error.
func (s *SearchService) Search(ctx context.Context, query search.Query) (search.Response, error) {
	if err := query.Validate(); err != nil {
		return search.Response{}, err
	}

	limit := query.Limit()
	if limit <= 0 {
		limit = s.limit
	}
	threshold := query.Threshold()
	if threshold < 0 || threshold > 1 {
		threshold = s.threshold
	}

	logger := s.logger.WithContext(ctx)

	if s.embedder == nil {
		logger.Warn("returning sample results", "error", search.ErrProviderUnavailable)
		return s.degraded(query.Text()), nil
	}

	if err := s.manager.EnsureEmbeddings(ctx); err != nil {
		return search.Response{}, err
	}

	queryVectors, err := s.embedder.Embed(ctx, []string{query.Text()})
	if err != nil || len(queryVectors) != 1 {
		logger.Warn("query embedding failed, falling back to keyword search", "error", err)
		return s.keyword(query.Text(), limit), nil
	}

	matches := infrasearch.RankAboveThreshold(queryVectors[0], s.storedVectors(), threshold, limit)
	if len(matches) == 0 {
		logger.Debug("no semantic matches above threshold, falling back to keyword search",
			"threshold", threshold,
		)
		return s.keyword(query.Text(), limit), nil
	}

	results := make([]search.RankedResult, 0, len(matches))
	for _, match := range matches {
		item, ok := s.corpus.Item(match.ItemID())
		if !ok {
			continue
		}
		results = append(results, search.NewSemanticResult(item, match.Similarity()))
	}

	logger.Info("search completed",
		"method", string(search.MethodSemantic),
		"total", len(results),
	)
	return search.NewResponse(query.Text(), results, search.MethodSemantic), nil
}

// storedVectors snapshots the corpus embeddings in insertion order. Items
// whose warming failed are absent and simply do not participate in ranking.
func (s *SearchService) storedVectors() []infrasearch.StoredVector {
	items := s.corpus.Items()
	vectors := make([]infrasearch.StoredVector, 0, len(items))
	for _, item := range items {
		if vec, ok := s.corpus.Embedding(item.ID()); ok {
			vectors = append(vectors, infrasearch.NewStoredVector(item.ID(), vec))
		}
	}
	return vectors
}

// keyword runs the fallback matcher. An empty match set yields an empty
// keyword response, never an error.
func (s *SearchService) keyword(query string, limit int) search.Response {
	matched := s.matcher.Match(query, s.corpus.Items())
	if len(matched) > limit {
		matched = matched[:limit]
	}

	results := make([]search.RankedResult, len(matched))
	for i, item := range matched {
		results[i] = search.NewKeywordResult(item)
	}

	s.logger.Info("search completed",
		"method", string(search.MethodKeyword),
		"total", len(results),
	)
	return search.NewResponse(query, results, search.MethodKeyword)
}

// degraded builds the fixed-sample response used when no provider is
// configured.
func (s *SearchService) degraded(query string) search.Response {
	sample := s.corpus.Sample(degradedSampleSize)
	results := make([]search.RankedResult, len(sample))
	for i, item := range sample {
		results[i] = search.NewKeywordResult(item)
	}
	return search.NewDegradedResponse(query, results, degradedStatus)
}
