// Package dto defines the JSON request and response shapes for the v1 API.
package dto

import "github.com/agenticlabs/semsearch/domain/search"

// SearchRequest is the body of a search call. Limit and Threshold are
// optional; absent values fall back to the configured defaults.
type SearchRequest struct {
	Query     string   `json:"query"`
	Limit     *int     `json:"limit,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
}

// ResultContent groups the content payloads of a result item.
type ResultContent struct {
	Text    string `json:"text"`
	Video   string `json:"video"`
	Podcast string `json:"podcast"`
}

// SearchResult is one ranked item in a search response. Similarity is only
// present for semantic results; keyword and degraded results carry none.
type SearchResult struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Content     ResultContent `json:"content"`
	Image       string        `json:"image,omitempty"`
	Type        string        `json:"type"`
	Similarity  *float64      `json:"similarity,omitempty"`
	Source      string        `json:"source"`
}

// SearchResponse is the search response envelope.
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Method  string         `json:"method"`
	Status  string         `json:"status,omitempty"`
}

// FromResponse maps a domain search response to its transport shape,
// stripping everything internal (embedding vectors never reach the wire).
func FromResponse(resp search.Response) SearchResponse {
	ranked := resp.Results()
	results := make([]SearchResult, len(ranked))
	for i, r := range ranked {
		results[i] = fromRankedResult(r)
	}

	return SearchResponse{
		Query:   resp.Query(),
		Results: results,
		Total:   resp.Total(),
		Method:  string(resp.Method()),
		Status:  resp.Status(),
	}
}

func fromRankedResult(r search.RankedResult) SearchResult {
	item := r.Item()

	result := SearchResult{
		ID:          item.ID(),
		Title:       item.Title(),
		Description: item.Description(),
		Content: ResultContent{
			Text:    item.Body(),
			Video:   item.Video(),
			Podcast: item.Podcast(),
		},
		Image:  item.Image(),
		Type:   string(item.Category()),
		Source: string(r.Source()),
	}

	if similarity, ok := r.Similarity(); ok {
		result.Similarity = &similarity
	}

	return result
}
