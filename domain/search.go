package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// SearchResult is a normalized product search response.
type SearchResult struct {
	Query    string    `json:"query"`
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// SearchHistoryEntry is one past query from the user's search history.
type SearchHistoryEntry struct {
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searched_at"`
}

// NormalizeSearchResult unwraps and normalizes a search response body for
// the given query. List envelopes favor "items" over "products" over
// "results" over a bare array.
func NormalizeSearchResult(query string, body any) SearchResult {
	raw := decode.UnwrapList(body, "items", "products", "results")
	return SearchResult{
		Query:    query,
		Products: NormalizeProducts(raw),
		Total:    decode.ListTotal(body, len(raw)),
	}
}

// NormalizeSearchHistory maps a raw history list to entries, skipping
// elements with no usable query text. History entries may be bare query
// strings or {query, searched_at} records. The result is never nil.
func NormalizeSearchHistory(raw []any) []SearchHistoryEntry {
	out := make([]SearchHistoryEntry, 0, len(raw))
	for _, v := range raw {
		if q, ok := decode.OptionalString(v); ok && q != "" {
			out = append(out, SearchHistoryEntry{Query: q, SearchedAt: time.Now().UTC()})
			continue
		}
		rec := decode.AsRecord(v)
		q, _ := decode.FirstString(rec, "query", "q", "term")
		if q == "" {
			continue
		}
		out = append(out, SearchHistoryEntry{
			Query:      q,
			SearchedAt: timeOrNow(rec, "searched_at", "searchedAt", "created_at"),
		})
	}
	return out
}

// NormalizeQueryList maps a raw list to plain query strings, accepting
// bare strings and {query}/{name} records. The result is never nil.
func NormalizeQueryList(raw []any) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if q, ok := decode.OptionalString(v); ok && q != "" {
			out = append(out, q)
			continue
		}
		rec := decode.AsRecord(v)
		if q, ok := decode.FirstString(rec, "query", "q", "name", "term"); ok {
			out = append(out, q)
		}
	}
	return out
}
