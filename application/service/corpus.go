// Package service provides application layer services that orchestrate domain
// operations.
package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

// CorpusManager owns embedding backfill for the content corpus. Embeddings
// are computed lazily, at most once per item: concurrent requests that
// discover the same missing embedding share one in-flight provider call.
type CorpusManager struct {
	corpus   *content.Corpus
	embedder search.Embedder
	logger   *log.Logger
	parallel int
	group    singleflight.Group
}

// CorpusManagerOption configures a CorpusManager.
type CorpusManagerOption func(*CorpusManager)

// WithParallelTasks bounds how many embedding calls run concurrently during
// corpus warming.
func WithParallelTasks(n int) CorpusManagerOption {
	return func(m *CorpusManager) {
		if n > 0 {
			m.parallel = n
		}
	}
}

// NewCorpusManager creates a CorpusManager.
func NewCorpusManager(corpus *content.Corpus, embedder search.Embedder, logger *log.Logger, opts ...CorpusManagerOption) *CorpusManager {
	m := &CorpusManager{
		corpus:   corpus,
		embedder: embedder,
		logger:   logger,
		parallel: config.DefaultParallelTasks,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EnsureEmbeddings computes and caches embeddings for every corpus item that
// does not have one yet. A failed item is logged and skipped so that one bad
// provider call never blocks ranking over the rest of the corpus; the item is
// retried on the next call. Safe to call concurrently and idempotent once the
// corpus is fully warmed.
func (m *CorpusManager) EnsureEmbeddings(ctx context.Context) error {
	missing := m.corpus.MissingEmbeddings()
	if len(missing) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallel)

	for _, item := range missing {
		item := item
		g.Go(func() error {
			if err := m.embedItem(ctx, item); err != nil {
				m.logger.WithContext(ctx).Warn("skipping item after embedding failure",
					"item_id", item.ID(),
					"error", err,
				)
			}
			return nil
		})
	}

	return g.Wait()
}

// embedItem computes and caches one item's embedding. Calls for the same
// item ID are collapsed into a single provider request.
func (m *CorpusManager) embedItem(ctx context.Context, item content.Item) error {
	_, err, _ := m.group.Do(item.ID(), func() (any, error) {
		if _, ok := m.corpus.Embedding(item.ID()); ok {
			return nil, nil
		}

		vectors, err := m.embedder.Embed(ctx, []string{item.Body()})
		if err != nil {
			return nil, err
		}
		if len(vectors) != 1 {
			return nil, errors.New("provider returned unexpected vector count")
		}

		m.corpus.SetEmbedding(item.ID(), vectors[0])
		return nil, nil
	})
	return err
}
