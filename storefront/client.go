// Package storefront exposes the per-resource API services of the
// marketplace backend. Each service wraps one resource with thin methods:
// typed input, a single HTTP call through the shared client, then
// envelope unwrap and normalization into the domain types.
//
// Error policy is decided per call site, never globally. Mutations and
// primary reads hard-fail (the error propagates, carrying a backend-
// derived message). Best-effort reads whose absence should not break a
// page (recommendations, search history, popular queries, review stats)
// soft-fail: they log a warning and return an empty or default value.
package storefront

import (
	"log/slog"

	"github.com/utafrali/StorefrontGo/httpapi"
)

// Versioned endpoint registry.
const (
	pathItems       = "/api/v1/items"
	pathStores      = "/api/v1/stores"
	pathBrands      = "/api/v1/brands"
	pathWishlist    = "/api/v1/wishlist"
	pathCollections = "/api/v1/collections"
	pathReviews     = "/api/v1/reviews"
	pathRecs        = "/api/v1/recommendations"
	pathSearch      = "/api/v1/search"
	pathAuth        = "/api/v1/auth"
	pathUsers       = "/api/v1/users"
	pathUploads     = "/api/v1/uploads"
)

// Client bundles every resource service over one shared HTTP client.
type Client struct {
	Products        *ProductsService
	Stores          *StoresService
	Brands          *BrandsService
	Wishlist        *WishlistService
	Collections     *CollectionsService
	Reviews         *ReviewsService
	Recommendations *RecommendationsService
	Search          *SearchService
	Auth            *AuthService
	Users           *UsersService
	Uploads         *UploadsService
}

// NewClient creates the full service bundle. Best-effort endpoints get
// their own circuit breakers so an unhealthy backend degrades to the
// documented fallbacks instead of being hammered.
func NewClient(api *httpapi.Client, logger *slog.Logger) *Client {
	recsBreaker := httpapi.NewBreakerClient(api, httpapi.DefaultBreakerConfig("recommendations"), logger)
	searchBreaker := httpapi.NewBreakerClient(api, httpapi.DefaultBreakerConfig("search-extras"), logger)

	return &Client{
		Products:        &ProductsService{api: api},
		Stores:          &StoresService{api: api},
		Brands:          &BrandsService{api: api},
		Wishlist:        &WishlistService{api: api},
		Collections:     &CollectionsService{api: api},
		Reviews:         &ReviewsService{api: api, logger: logger},
		Recommendations: &RecommendationsService{api: api, breaker: recsBreaker, logger: logger},
		Search:          &SearchService{api: api, breaker: searchBreaker, logger: logger},
		Auth:            &AuthService{api: api, tokens: api.Tokens()},
		Users:           &UsersService{api: api},
		Uploads:         &UploadsService{api: api},
	}
}
