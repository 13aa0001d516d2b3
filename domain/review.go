package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// Review is a normalized store or product review. Exactly one of StoreID
// and ProductID is usually set, describing the review subject.
type Review struct {
	ID                 string    `json:"id"`
	StoreID            *string   `json:"store_id,omitempty"`
	ProductID          *string   `json:"product_id,omitempty"`
	UserID             string    `json:"user_id"`
	Rating             float64   `json:"rating"`
	Title              *string   `json:"title,omitempty"`
	Comment            *string   `json:"comment,omitempty"`
	HelpfulCount       int       `json:"helpful_count"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
}

// ReviewStats holds aggregate review statistics for a store or product.
type ReviewStats struct {
	AverageRating float64        `json:"average_rating"`
	TotalCount    int            `json:"total_count"`
	Distribution  map[string]int `json:"distribution,omitempty"`
}

// NormalizeReview maps a raw record of uncertain shape to a Review.
func NormalizeReview(raw any) Review {
	rec := decode.AsRecord(raw)

	r := Review{}
	r.ID, _ = decode.FirstString(rec, "id", "review_id", "reviewId")

	if v, ok := decode.FirstString(rec, "store_id", "storeId"); ok {
		r.StoreID = &v
	}
	if v, ok := decode.FirstString(rec, "product_id", "productId"); ok {
		r.ProductID = &v
	}

	r.UserID, _ = decode.FirstString(rec, "user_id", "userId", "author_id")
	if n, ok := decode.FirstNumber(rec, "rating", "stars", "score"); ok {
		r.Rating = n
	}

	if v, ok := decode.FirstString(rec, "title", "headline"); ok {
		r.Title = &v
	}
	if v, ok := decode.FirstString(rec, "comment", "text", "body"); ok {
		r.Comment = &v
	}

	if n, ok := decode.FirstNumber(rec, "helpful_count", "helpful", "helpfulCount"); ok {
		r.HelpfulCount = int(n)
	}
	r.IsVerifiedPurchase = decode.Boolean(firstPresent(rec, "is_verified_purchase", "verified_purchase", "verified"))

	r.CreatedAt = timeOrNow(rec, "created_at", "createdAt")
	return r
}

// NormalizeReviews maps each element of a raw list to a Review. The
// result is never nil.
func NormalizeReviews(raw []any) []Review {
	out := make([]Review, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeReview(v))
	}
	return out
}

// NormalizeReviewStats maps a raw record to ReviewStats, zero-valued when
// absent. Soft-fail read paths return this zero value on error as well.
func NormalizeReviewStats(raw any) ReviewStats {
	rec := decode.AsRecord(raw)

	stats := ReviewStats{}
	if n, ok := decode.FirstNumber(rec, "average_rating", "avg_rating", "average"); ok {
		stats.AverageRating = n
	}
	if n, ok := decode.FirstNumber(rec, "total_count", "count", "total"); ok {
		stats.TotalCount = int(n)
	}

	dist, ok := decode.Record(rec, "distribution")
	if !ok {
		dist, ok = decode.Record(rec, "rating_counts")
	}
	if ok {
		out := make(map[string]int, len(dist))
		for k, v := range dist {
			if n, numOK := decode.Int(v); numOK {
				out[k] = n
			}
		}
		if len(out) > 0 {
			stats.Distribution = out
		}
	}
	return stats
}
