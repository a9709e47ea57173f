package content

import "sync"

// Corpus is the fixed, in-process collection of content items. Items are
// registered once at construction and live for the process lifetime; the only
// mutable state is the per-item embedding, which is filled in at most once.
//
// Corpus is safe for concurrent use.
type Corpus struct {
	mu         sync.RWMutex
	order      []string
	items      map[string]Item
	embeddings map[string][]float64
}

// NewCorpus creates a Corpus from the given items, preserving insertion
// order. A duplicate ID overwrites the earlier item but keeps its position.
func NewCorpus(items ...Item) *Corpus {
	c := &Corpus{
		items:      make(map[string]Item, len(items)),
		embeddings: make(map[string][]float64, len(items)),
	}
	for _, item := range items {
		if _, exists := c.items[item.ID()]; !exists {
			c.order = append(c.order, item.ID())
		}
		c.items[item.ID()] = item
	}
	return c
}

// Len returns the number of items in the corpus.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Items returns all items in insertion order.
func (c *Corpus) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]Item, len(c.order))
	for i, id := range c.order {
		items[i] = c.items[id]
	}
	return items
}

// Item returns the item with the given ID.
func (c *Corpus) Item(id string) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// Embedding returns a copy of the cached embedding for the given item, or
// false if none has been computed yet.
func (c *Corpus) Embedding(id string) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	vec, ok := c.embeddings[id]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(vec))
	copy(out, vec)
	return out, true
}

// SetEmbedding caches the embedding for the given item. The first write wins:
// an embedding already present is never replaced, keeping computation
// at-most-once per item per process lifetime. Returns false if the item is
// unknown or already has an embedding.
func (c *Corpus) SetEmbedding(id string, vec []float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	if _, ok := c.embeddings[id]; ok {
		return false
	}
	stored := make([]float64, len(vec))
	copy(stored, vec)
	c.embeddings[id] = stored
	return true
}

// MissingEmbeddings returns the items that do not yet have a cached
// embedding, in insertion order.
func (c *Corpus) MissingEmbeddings() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []Item
	for _, id := range c.order {
		if _, ok := c.embeddings[id]; !ok {
			missing = append(missing, c.items[id])
		}
	}
	return missing
}

// Sample returns up to n items from the front of the corpus. Used for the
// degraded response when no embedding provider is configured.
func (c *Corpus) Sample(n int) []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if n > len(c.order) {
		n = len(c.order)
	}
	if n < 0 {
		n = 0
	}
	items := make([]Item, n)
	for i := 0; i < n; i++ {
		items[i] = c.items[c.order[i]]
	}
	return items
}
