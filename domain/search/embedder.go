package search

import "context"

// Embedder converts text into embedding vectors. Implementations make a
// single attempt per call; retry policy belongs to the caller.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}
