package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		NewItem("a", "Alpha", "first", "alpha body", CategoryHotTopic),
		NewItem("b", "Beta", "second", "beta body", CategoryConcept),
		NewItem("c", "Gamma", "third", "gamma body", CategoryReport),
	}
}

func TestCorpus_ItemsPreserveInsertionOrder(t *testing.T) {
	c := NewCorpus(testItems()...)

	items := c.Items()
	require.Len(t, items, 3)
	require.Equal(t, "a", items[0].ID())
	require.Equal(t, "b", items[1].ID())
	require.Equal(t, "c", items[2].ID())
}

func TestCorpus_DuplicateIDKeepsPosition(t *testing.T) {
	c := NewCorpus(
		NewItem("a", "Alpha", "", "", CategoryConcept),
		NewItem("b", "Beta", "", "", CategoryConcept),
		NewItem("a", "Alpha v2", "", "", CategoryConcept),
	)

	items := c.Items()
	require.Len(t, items, 2)
	require.Equal(t, "a", items[0].ID())
	require.Equal(t, "Alpha v2", items[0].Title())
}

func TestCorpus_Item(t *testing.T) {
	c := NewCorpus(testItems()...)

	item, ok := c.Item("b")
	require.True(t, ok)
	require.Equal(t, "Beta", item.Title())

	_, ok = c.Item("missing")
	require.False(t, ok)
}

func TestCorpus_SetEmbeddingFirstWriteWins(t *testing.T) {
	c := NewCorpus(testItems()...)

	require.True(t, c.SetEmbedding("a", []float64{1, 2}))
	require.False(t, c.SetEmbedding("a", []float64{9, 9}), "second write must be rejected")

	vec, ok := c.Embedding("a")
	require.True(t, ok)
	require.Equal(t, []float64{1, 2}, vec)
}

func TestCorpus_SetEmbeddingUnknownItem(t *testing.T) {
	c := NewCorpus(testItems()...)

	require.False(t, c.SetEmbedding("missing", []float64{1}))
}

func TestCorpus_EmbeddingReturnsCopy(t *testing.T) {
	c := NewCorpus(testItems()...)
	c.SetEmbedding("a", []float64{1, 2})

	vec, _ := c.Embedding("a")
	vec[0] = 99

	fresh, _ := c.Embedding("a")
	require.Equal(t, []float64{1, 2}, fresh)
}

func TestCorpus_MissingEmbeddings(t *testing.T) {
	c := NewCorpus(testItems()...)

	require.Len(t, c.MissingEmbeddings(), 3)

	c.SetEmbedding("b", []float64{1})

	missing := c.MissingEmbeddings()
	require.Len(t, missing, 2)
	require.Equal(t, "a", missing[0].ID())
	require.Equal(t, "c", missing[1].ID())
}

func TestCorpus_Sample(t *testing.T) {
	c := NewCorpus(testItems()...)

	sample := c.Sample(2)
	require.Len(t, sample, 2)
	require.Equal(t, "a", sample[0].ID())
	require.Equal(t, "b", sample[1].ID())

	require.Len(t, c.Sample(10), 3)
	require.Empty(t, c.Sample(0))
	require.Empty(t, c.Sample(-1))
}

func TestDefaultCorpus(t *testing.T) {
	c := DefaultCorpus()

	require.Equal(t, 12, c.Len())
	require.Len(t, c.MissingEmbeddings(), 12, "catalog ships without precomputed embeddings")

	// Every item has an ID, title, and body; IDs are unique.
	seen := map[string]bool{}
	for _, item := range c.Items() {
		require.NotEmpty(t, item.ID())
		require.NotEmpty(t, item.Title())
		require.NotEmpty(t, item.Body())
		require.False(t, seen[item.ID()], "duplicate id %s", item.ID())
		seen[item.ID()] = true
	}
}
