package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
)

// defaultPopularQueries is served when the popular-queries endpoint is
// unavailable, so the search page never renders an empty suggestions
// block.
var defaultPopularQueries = []string{
	"sneakers",
	"dresses",
	"jackets",
	"bags",
	"watches",
}

// SearchService wraps product search. The primary search call hard-fails
// (a broken search page must say so); the auxiliary reads around it
// (suggestions, history, popular queries) soft-fail to defaults through a
// circuit breaker.
type SearchService struct {
	api     *httpapi.Client
	breaker *httpapi.BreakerClient
	logger  *slog.Logger
}

// Search executes a product search. Hard-fail.
func (s *SearchService) Search(ctx context.Context, query string, page, perPage int) (domain.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	body, err := s.api.GetJSON(ctx, pathSearch, q)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search %q: %w", query, err)
	}
	return domain.NormalizeSearchResult(query, body), nil
}

// Suggestions returns typeahead suggestions for a prefix, empty on any
// failure.
func (s *SearchService) Suggestions(ctx context.Context, prefix string) []string {
	q := url.Values{}
	q.Set("q", prefix)

	body, err := s.breaker.GetJSON(ctx, pathSearch+"/suggestions", q)
	if err != nil {
		s.logger.WarnContext(ctx, "search suggestions unavailable",
			slog.String("error", err.Error()),
		)
		return []string{}
	}
	return domain.NormalizeQueryList(decode.UnwrapList(body, "suggestions", "items"))
}

// History returns the user's recent searches, empty on any failure.
func (s *SearchService) History(ctx context.Context) []domain.SearchHistoryEntry {
	body, err := s.breaker.GetJSON(ctx, pathSearch+"/history", nil)
	if err != nil {
		s.logger.WarnContext(ctx, "search history unavailable",
			slog.String("error", err.Error()),
		)
		return []domain.SearchHistoryEntry{}
	}
	return domain.NormalizeSearchHistory(decode.UnwrapList(body, "items", "history"))
}

// PopularQueries returns trending queries, falling back to a fixed
// default list on any failure or an empty response.
func (s *SearchService) PopularQueries(ctx context.Context) []string {
	body, err := s.breaker.GetJSON(ctx, pathSearch+"/popular", nil)
	if err != nil {
		s.logger.WarnContext(ctx, "popular queries unavailable, using defaults",
			slog.String("error", err.Error()),
		)
		return defaultPopularQueries
	}

	queries := domain.NormalizeQueryList(decode.UnwrapList(body, "queries", "items"))
	if len(queries) == 0 {
		return defaultPopularQueries
	}
	return queries
}

// ClearHistory deletes the user's search history. Best-effort.
func (s *SearchService) ClearHistory(ctx context.Context) {
	if _, err := s.api.DeleteJSON(ctx, pathSearch+"/history"); err != nil {
		s.logger.WarnContext(ctx, "clear search history failed",
			slog.String("error", err.Error()),
		)
	}
}
