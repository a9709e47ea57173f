// Package search provides the ranking primitives: cosine similarity over
// embedding vectors and the naive keyword matcher used as a fallback.
package search

import (
	"math"
	"sort"
)

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns a value between -1 (opposite) and 1 (identical).
// Returns 0 if the vectors differ in length or either has zero magnitude,
// so a partial provider failure never aborts a ranking pass.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, magA, magB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(magA) * math.Sqrt(magB))
}

// StoredVector holds an embedding vector with its content item ID.
type StoredVector struct {
	itemID    string
	embedding []float64
}

// NewStoredVector creates a new StoredVector.
func NewStoredVector(itemID string, embedding []float64) StoredVector {
	vec := make([]float64, len(embedding))
	copy(vec, embedding)
	return StoredVector{
		itemID:    itemID,
		embedding: vec,
	}
}

// ItemID returns the content item identifier.
func (v StoredVector) ItemID() string { return v.itemID }

// Embedding returns the embedding vector (copy).
func (v StoredVector) Embedding() []float64 {
	result := make([]float64, len(v.embedding))
	copy(result, v.embedding)
	return result
}

// SimilarityMatch holds a content item ID and its similarity score.
type SimilarityMatch struct {
	itemID     string
	similarity float64
}

// NewSimilarityMatch creates a new SimilarityMatch.
func NewSimilarityMatch(itemID string, similarity float64) SimilarityMatch {
	return SimilarityMatch{
		itemID:     itemID,
		similarity: similarity,
	}
}

// ItemID returns the content item identifier.
func (m SimilarityMatch) ItemID() string { return m.itemID }

// Similarity returns the similarity score.
func (m SimilarityMatch) Similarity() float64 { return m.similarity }

// RankAboveThreshold scores every stored vector against the query, keeps
// matches with similarity >= threshold, and returns at most limit of them
// sorted by similarity descending. Ties preserve the input (corpus
// insertion) order.
func RankAboveThreshold(query []float64, vectors []StoredVector, threshold float64, limit int) []SimilarityMatch {
	if limit <= 0 {
		return []SimilarityMatch{}
	}

	matches := make([]SimilarityMatch, 0, len(vectors))
	for _, v := range vectors {
		similarity := CosineSimilarity(query, v.embedding)
		if similarity >= threshold {
			matches = append(matches, NewSimilarityMatch(v.itemID, similarity))
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
