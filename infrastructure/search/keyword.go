package search

import (
	"sort"
	"strings"

	"github.com/agenticlabs/semsearch/domain/content"
)

// stopWords are query tokens too generic to match on.
var stopWords = map[string]struct{}{
	"what": {},
	"is":   {},
	"the":  {},
	"how":  {},
	"and":  {},
	"are":  {},
	"can":  {},
	"will": {},
	"does": {},
}

// minTokenLength excludes short tokens ("a", "to", "of") from matching.
const minTokenLength = 3

// KeywordMatcher is the degraded-mode matcher used when embedding-based
// search cannot run or yields nothing above threshold. It performs naive
// substring matching of query tokens against item title, description, and
// body.
type KeywordMatcher struct{}

// NewKeywordMatcher creates a new KeywordMatcher.
func NewKeywordMatcher() KeywordMatcher {
	return KeywordMatcher{}
}

// Tokenize splits a query into lowercase tokens, discarding stop words and
// tokens shorter than three characters.
func (KeywordMatcher) Tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"'()")
		if len(f) < minTokenLength {
			continue
		}
		if _, ok := stopWords[f]; ok {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Match returns the items where any query token appears as a substring of
// the lowercased title, description, or body. Results are ordered by the
// number of distinct matching tokens, descending; ties keep the input
// (corpus insertion) order. No similarity score is produced.
func (m KeywordMatcher) Match(query string, items []content.Item) []content.Item {
	tokens := m.Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	type match struct {
		item  content.Item
		count int
	}

	var matches []match
	for _, item := range items {
		haystack := strings.ToLower(item.Title() + " " + item.Description() + " " + item.Body())
		count := 0
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, match{item: item, count: count})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].count > matches[j].count
	})

	result := make([]content.Item, len(matches))
	for i, m := range matches {
		result[i] = m.item
	}
	return result
}
