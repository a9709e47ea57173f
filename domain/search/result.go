package search

import "github.com/agenticlabs/semsearch/domain/content"

// Source labels the provenance of a ranked result.
type Source string

// Source values.
const (
	SourceSemantic Source = "semantic"
	SourceKeyword  Source = "keyword"
)

// Method labels which path produced a response.
type Method string

// Method values.
const (
	MethodSemantic Method = "semantic_search"
	MethodKeyword  Method = "keyword_search"
	MethodDegraded Method = "degraded"
)

// RankedResult is a content item paired with its provenance and, for
// semantic results, its cosine similarity score. Keyword results carry no
// score; a cosine-style value must never be fabricated for them.
type RankedResult struct {
	item       content.Item
	similarity float64
	scored     bool
	source     Source
}

// NewSemanticResult creates a RankedResult produced by vector ranking.
func NewSemanticResult(item content.Item, similarity float64) RankedResult {
	return RankedResult{
		item:       item,
		similarity: similarity,
		scored:     true,
		source:     SourceSemantic,
	}
}

// NewKeywordResult creates a RankedResult produced by the keyword fallback.
func NewKeywordResult(item content.Item) RankedResult {
	return RankedResult{
		item:   item,
		source: SourceKeyword,
	}
}

// Item returns the underlying content item.
func (r RankedResult) Item() content.Item { return r.item }

// Similarity returns the cosine similarity score and whether one exists.
func (r RankedResult) Similarity() (float64, bool) {
	return r.similarity, r.scored
}

// Source returns the provenance label.
func (r RankedResult) Source() Source { return r.source }

// Response is the outcome of a search: the ranked results, how they were
// produced, and an optional status note for degraded responses.
type Response struct {
	query   string
	results []RankedResult
	method  Method
	status  string
}

// NewResponse creates a new Response.
func NewResponse(query string, results []RankedResult, method Method) Response {
	out := make([]RankedResult, len(results))
	copy(out, results)
	return Response{
		query:   query,
		results: out,
		method:  method,
	}
}

// NewDegradedResponse creates a Response for the no-provider path.
func NewDegradedResponse(query string, results []RankedResult, status string) Response {
	r := NewResponse(query, results, MethodDegraded)
	r.status = status
	return r
}

// Query returns the original query text.
func (r Response) Query() string { return r.query }

// Results returns the ranked results.
func (r Response) Results() []RankedResult {
	out := make([]RankedResult, len(r.results))
	copy(out, r.results)
	return out
}

// Total returns the number of results.
func (r Response) Total() int { return len(r.results) }

// Method returns which search path produced the response.
func (r Response) Method() Method { return r.method }

// Status returns the explanatory note for degraded responses, or "".
func (r Response) Status() string { return r.status }
