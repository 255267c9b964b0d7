package menu

import (
	"sort"
	"strings"
)

// SearchResult pairs a matched item with its score. Exact and empty-query
// searches are unscored (zero).
type SearchResult struct {
	Item  FlatItem
	Score int
}

// SearchOptions controls matching behavior.
type SearchOptions struct {
	// Limit caps the number of results.
	Limit int
	// Exact switches to substring matching instead of fuzzy.
	Exact bool
	// CaseSensitive makes matching respect case.
	CaseSensitive bool
}

// DefaultSearchLimit is the result cap when the caller does not choose one.
const DefaultSearchLimit = 10

// Search matches items against a query. Matching runs over the full path
// ("File::Save As…"), so word and segment boundaries score well. An empty
// query returns the first Limit items unscored. Results are ordered best
// first; ties keep tree order.
func Search(items []FlatItem, query string, opts SearchOptions) []SearchResult {
	if opts.Limit <= 0 {
		return []SearchResult{}
	}

	if query == "" {
		n := min(opts.Limit, len(items))
		results := make([]SearchResult, 0, n)
		for _, item := range items[:n] {
			results = append(results, SearchResult{Item: item})
		}
		return results
	}

	if opts.Exact {
		return exactSearch(items, query, opts)
	}
	return fuzzySearch(items, query, opts)
}

func exactSearch(items []FlatItem, query string, opts SearchOptions) []SearchResult {
	needle := query
	if !opts.CaseSensitive {
		needle = strings.ToLower(query)
	}

	results := make([]SearchResult, 0, opts.Limit)
	for _, item := range items {
		haystack := item.Path
		if !opts.CaseSensitive {
			haystack = strings.ToLower(haystack)
		}
		if strings.Contains(haystack, needle) {
			results = append(results, SearchResult{Item: item})
			if len(results) == opts.Limit {
				break
			}
		}
	}
	return results
}

func fuzzySearch(items []FlatItem, query string, opts SearchOptions) []SearchResult {
	slab := newSlab()
	results := make([]SearchResult, 0, len(items))
	for _, item := range items {
		if score := scoreFunc(slab, item.Path, query, opts.CaseSensitive); score > 0 {
			results = append(results, SearchResult{Item: item, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}
