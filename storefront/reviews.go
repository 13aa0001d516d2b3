package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/validate"
)

// ReviewsService wraps ratings and reviews. Reads soft-fail (a product
// page without reviews still renders); mutations hard-fail.
type ReviewsService struct {
	api    *httpapi.Client
	logger *slog.Logger
}

// ListForStore returns a store's reviews, degrading to an empty slice on
// any error.
func (s *ReviewsService) ListForStore(ctx context.Context, storeID string) []domain.Review {
	return s.list(ctx, url.Values{"store_id": []string{storeID}})
}

// ListForProduct returns a product's reviews, degrading to an empty slice
// on any error.
func (s *ReviewsService) ListForProduct(ctx context.Context, productID string) []domain.Review {
	return s.list(ctx, url.Values{"product_id": []string{productID}})
}

func (s *ReviewsService) list(ctx context.Context, q url.Values) []domain.Review {
	body, err := s.api.GetJSON(ctx, pathReviews, q)
	if err != nil {
		s.logger.WarnContext(ctx, "reviews unavailable, rendering none",
			slog.String("error", err.Error()),
		)
		return []domain.Review{}
	}
	return domain.NormalizeReviews(decode.UnwrapList(body, "items", "reviews"))
}

// Stats returns aggregate review statistics, degrading to a zeroed stats
// object on any error.
func (s *ReviewsService) Stats(ctx context.Context, q url.Values) domain.ReviewStats {
	body, err := s.api.GetJSON(ctx, pathReviews+"/stats", q)
	if err != nil {
		s.logger.WarnContext(ctx, "review stats unavailable, using zero stats",
			slog.String("error", err.Error()),
		)
		return domain.ReviewStats{}
	}
	return domain.NormalizeReviewStats(decode.UnwrapItem(body, "stats", "data"))
}

// StatsForStore returns aggregate review statistics for one store.
func (s *ReviewsService) StatsForStore(ctx context.Context, storeID string) domain.ReviewStats {
	return s.Stats(ctx, url.Values{"store_id": []string{storeID}})
}

// CreateReviewInput holds the payload for submitting a review. Exactly
// one of StoreID and ProductID identifies the subject.
type CreateReviewInput struct {
	StoreID   string  `json:"store_id,omitempty"`
	ProductID string  `json:"product_id,omitempty"`
	Rating    float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string  `json:"title,omitempty" validate:"omitempty,max=120"`
	Comment   string  `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// Create submits a review and returns the normalized result. Hard-fail:
// the user needs to know their review did not go through.
func (s *ReviewsService) Create(ctx context.Context, in CreateReviewInput) (domain.Review, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	if in.StoreID == "" && in.ProductID == "" {
		return domain.Review{}, fmt.Errorf("create review: a store or product subject is required")
	}

	body, err := s.api.PostJSON(ctx, pathReviews, in)
	if err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}
	return domain.NormalizeReview(decode.UnwrapItem(body, "item", "review")), nil
}

// Delete removes the user's own review. Hard-fail.
func (s *ReviewsService) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteJSON(ctx, pathReviews+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete review %s: %w", id, err)
	}
	return nil
}

// MarkHelpful increments a review's helpful counter. Best-effort: a
// failed vote is logged and dropped.
func (s *ReviewsService) MarkHelpful(ctx context.Context, id string) {
	if _, err := s.api.PostJSON(ctx, pathReviews+"/"+url.PathEscape(id)+"/helpful", nil); err != nil {
		s.logger.WarnContext(ctx, "helpful vote dropped",
			slog.String("review_id", id),
			slog.String("error", err.Error()),
		)
	}
}
