package domain

import (
	"github.com/utafrali/StorefrontGo/decode"
)

// Recommendation is a normalized product recommendation. The backend may
// inline the recommended product or reference it by id only.
type Recommendation struct {
	ID        string   `json:"id"`
	ProductID string   `json:"product_id"`
	Score     float64  `json:"score"`
	Reason    *string  `json:"reason,omitempty"`
	Product   *Product `json:"product,omitempty"`
}

// NormalizeRecommendation maps a raw record of uncertain shape to a
// Recommendation.
func NormalizeRecommendation(raw any) Recommendation {
	rec := decode.AsRecord(raw)

	r := Recommendation{}
	r.ProductID, _ = decode.FirstString(rec, "product_id", "productId")

	if product, ok := decode.Record(rec, "product"); ok {
		p := NormalizeProduct(product)
		r.Product = &p
		if r.ProductID == "" {
			r.ProductID = p.ID
		}
	}

	r.ID, _ = decode.FirstString(rec, "id", "recommendation_id")
	if r.ID == "" {
		r.ID = r.ProductID
	}

	if n, ok := decode.FirstNumber(rec, "score", "relevance", "weight"); ok {
		r.Score = n
	}
	if v, ok := decode.FirstString(rec, "reason", "explanation"); ok {
		r.Reason = &v
	}
	return r
}

// NormalizeRecommendations maps each element of a raw list to a
// Recommendation. The result is never nil.
func NormalizeRecommendations(raw []any) []Recommendation {
	out := make([]Recommendation, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeRecommendation(v))
	}
	return out
}
