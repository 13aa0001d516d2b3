package storefront

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
)

// RecommendationsService wraps the recommendation endpoints. Everything
// here is best-effort: a page renders fine without recommendations, so
// every error degrades to an empty slice. Calls go through a circuit
// breaker so a struggling recommender is left alone.
type RecommendationsService struct {
	api     *httpapi.Client
	breaker *httpapi.BreakerClient
	logger  *slog.Logger
}

// ForUser returns personalized recommendations, empty on any failure.
func (s *RecommendationsService) ForUser(ctx context.Context, limit int) []domain.Recommendation {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return s.fetch(ctx, pathRecs, q)
}

// Similar returns products similar to the given one, empty on any
// failure.
func (s *RecommendationsService) Similar(ctx context.Context, productID string, limit int) []domain.Recommendation {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return s.fetch(ctx, pathRecs+"/similar/"+url.PathEscape(productID), q)
}

func (s *RecommendationsService) fetch(ctx context.Context, path string, q url.Values) []domain.Recommendation {
	body, err := s.breaker.GetJSON(ctx, path, q)
	if err != nil {
		s.logger.WarnContext(ctx, "recommendations unavailable",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return []domain.Recommendation{}
	}
	return domain.NormalizeRecommendations(decode.UnwrapList(body, "items", "recommendations", "products"))
}
