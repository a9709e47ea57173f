package semsearch

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agenticlabs/semsearch/domain/content"
	"github.com/agenticlabs/semsearch/domain/search"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

type constantEmbedder struct {
	vector []float64
}

func (c constantEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i := range texts {
		out[i] = c.vector
	}
	return out, nil
}

func quietLogger() *log.Logger {
	return log.NewLoggerWithWriter(io.Discard, config.LogFormatJSON, "ERROR")
}

func TestNew_DefaultsToDegradedMode(t *testing.T) {
	client, err := New(WithLogger(quietLogger()))
	require.NoError(t, err)

	require.True(t, client.Search.Degraded())
	require.Equal(t, 12, client.Corpus().Len(), "built-in catalog is loaded by default")

	resp, err := client.Search.Search(context.Background(), search.NewQuery("agents", 0, -1))
	require.NoError(t, err)
	require.Equal(t, search.MethodDegraded, resp.Method())
	require.Equal(t, 3, resp.Total())
}

func TestNew_WithEmbedder(t *testing.T) {
	client, err := New(
		WithLogger(quietLogger()),
		WithEmbedder(constantEmbedder{vector: []float64{1, 0}}),
		WithSearchThreshold(0.5),
		WithSearchLimit(2),
	)
	require.NoError(t, err)

	require.False(t, client.Search.Degraded())

	resp, err := client.Search.Search(context.Background(), search.NewQuery("agents", 0, -1))
	require.NoError(t, err)
	require.Equal(t, search.MethodSemantic, resp.Method())
	require.Equal(t, 2, resp.Total(), "configured limit applies")
}

func TestNew_WithCustomCorpus(t *testing.T) {
	corpus := content.NewCorpus(
		content.NewItem("only", "Only Item", "", "only body", content.CategoryConcept),
	)

	client, err := New(
		WithLogger(quietLogger()),
		WithCorpus(corpus),
		WithEmbedder(constantEmbedder{vector: []float64{1, 0}}),
	)
	require.NoError(t, err)

	resp, err := client.Search.Search(context.Background(), search.NewQuery("anything", 0, -1))
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total())
	require.Equal(t, "only", resp.Results()[0].Item().ID())
}

func TestNew_WithOpenAIConfiguresEndpoint(t *testing.T) {
	client, err := New(
		WithLogger(quietLogger()),
		WithOpenAI("sk-test"),
	)
	require.NoError(t, err)

	require.False(t, client.Search.Degraded())
	endpoint := client.Config().EmbeddingEndpoint()
	require.NotNil(t, endpoint)
	require.True(t, endpoint.IsConfigured())
}
