// Package search provides the search domain types: queries, ranked results,
// and the embedding contract.
package search

import (
	"errors"
	"strings"
)

// ErrInvalidQuery indicates an empty or whitespace-only query. It is a
// client error and must be raised before any provider call is made.
var ErrInvalidQuery = errors.New("query must not be empty")

// ErrProviderUnavailable indicates no embedding provider is configured at
// all. Callers handle it by serving a degraded sample response instead of
// failing.
var ErrProviderUnavailable = errors.New("embedding provider not configured")

// Query represents a content search request.
type Query struct {
	text      string
	limit     int
	threshold float64
}

// NewQuery creates a new Query. Limit and threshold are taken as given;
// defaulting is the caller's responsibility so that configured defaults stay
// explicit.
func NewQuery(text string, limit int, threshold float64) Query {
	return Query{
		text:      text,
		limit:     limit,
		threshold: threshold,
	}
}

// Text returns the query text.
func (q Query) Text() string { return q.text }

// Limit returns the maximum number of results.
func (q Query) Limit() int { return q.limit }

// Threshold returns the minimum cosine similarity for semantic results.
func (q Query) Threshold() float64 { return q.threshold }

// Validate checks the query for client errors.
func (q Query) Validate() error {
	if strings.TrimSpace(q.text) == "" {
		return ErrInvalidQuery
	}
	return nil
}
