package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agenticlabs/semsearch/domain/content"
)

func TestCorpusManager_EnsureEmbeddingsWarmsAllItems(t *testing.T) {
	corpus := testCorpus()
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}

	m := NewCorpusManager(corpus, embedder, testLogger())
	require.NoError(t, m.EnsureEmbeddings(context.Background()))

	require.Empty(t, corpus.MissingEmbeddings())
	require.Equal(t, int64(3), embedder.calls.Load())
}

func TestCorpusManager_EnsureEmbeddingsIsIdempotent(t *testing.T) {
	corpus := testCorpus()
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}

	m := NewCorpusManager(corpus, embedder, testLogger())
	require.NoError(t, m.EnsureEmbeddings(context.Background()))
	require.NoError(t, m.EnsureEmbeddings(context.Background()))

	require.Equal(t, int64(3), embedder.calls.Load(), "warmed items must never be re-embedded")
}

func TestCorpusManager_ConcurrentWarmingEmbedsEachItemOnce(t *testing.T) {
	corpus := testCorpus()
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}

	m := NewCorpusManager(corpus, embedder, testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.EnsureEmbeddings(context.Background())
		}()
	}
	wg.Wait()

	require.Empty(t, corpus.MissingEmbeddings())
	require.LessOrEqual(t, embedder.calls.Load(), int64(3),
		"concurrent callers must share in-flight embedding requests")
}

func TestCorpusManager_FailedItemIsSkippedAndRetriedLater(t *testing.T) {
	corpus := testCorpus()

	var fail atomic.Bool
	fail.Store(true)
	embedder := &flakyEmbedder{fail: &fail, vector: []float64{1, 0}}

	m := NewCorpusManager(corpus, embedder, testLogger())

	// First pass fails every item; warming itself still succeeds.
	require.NoError(t, m.EnsureEmbeddings(context.Background()))
	require.Len(t, corpus.MissingEmbeddings(), 3)

	// Once the provider recovers, the next pass fills the gaps.
	fail.Store(false)
	require.NoError(t, m.EnsureEmbeddings(context.Background()))
	require.Empty(t, corpus.MissingEmbeddings())
}

func TestCorpusManager_ParallelismBound(t *testing.T) {
	corpus := testCorpus()
	embedder := &fakeEmbedder{fallback: []float64{1, 0}}

	m := NewCorpusManager(corpus, embedder, testLogger(), WithParallelTasks(1))
	require.NoError(t, m.EnsureEmbeddings(context.Background()))

	require.Empty(t, corpus.MissingEmbeddings())
}

// flakyEmbedder fails while fail is set and succeeds afterwards.
type flakyEmbedder struct {
	fail   *atomic.Bool
	vector []float64
}

func (f *flakyEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if f.fail.Load() {
		return nil, errors.New("provider down")
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = f.vector
	}
	return out, nil
}

func TestCorpusManager_DefaultCorpusWarms(t *testing.T) {
	corpus := content.DefaultCorpus()
	embedder := &fakeEmbedder{fallback: []float64{0.1, 0.2, 0.3}}

	m := NewCorpusManager(corpus, embedder, testLogger())
	require.NoError(t, m.EnsureEmbeddings(context.Background()))

	require.Empty(t, corpus.MissingEmbeddings())
	require.Equal(t, int64(12), embedder.calls.Load())
}
