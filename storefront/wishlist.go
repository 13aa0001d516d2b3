package storefront

import (
	"context"
	"fmt"
	"net/url"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
)

// WishlistService wraps the authenticated user's wishlist. All operations
// hard-fail; a broken wishlist page should say so rather than render an
// empty list that silently loses state.
type WishlistService struct {
	api *httpapi.Client
}

// List returns the normalized wishlist.
func (s *WishlistService) List(ctx context.Context) ([]domain.WishlistItem, error) {
	body, err := s.api.GetJSON(ctx, pathWishlist, nil)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return domain.NormalizeWishlistResponse(body), nil
}

// AddInput holds the optional variant details for a wishlist add.
type AddInput struct {
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Add puts a product on the wishlist and returns the normalized item.
// Adding an already-present product is idempotent on the backend.
func (s *WishlistService) Add(ctx context.Context, productID string, in AddInput) (domain.WishlistItem, error) {
	payload := map[string]any{"product_id": productID}
	if in.VariantID != "" {
		payload["variant_id"] = in.VariantID
	}
	if in.Quantity > 0 {
		payload["quantity"] = in.Quantity
	}

	body, err := s.api.PostJSON(ctx, pathWishlist, payload)
	if err != nil {
		return domain.WishlistItem{}, fmt.Errorf("add to wishlist: %w", err)
	}
	return domain.NormalizeWishlistItem(decode.UnwrapItem(body, "item", "product")), nil
}

// Remove deletes a product from the wishlist.
func (s *WishlistService) Remove(ctx context.Context, productID string) error {
	if _, err := s.api.DeleteJSON(ctx, pathWishlist+"/"+url.PathEscape(productID)); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

// Contains reports whether a product is on the wishlist.
func (s *WishlistService) Contains(ctx context.Context, productID string) (bool, error) {
	body, err := s.api.GetJSON(ctx, pathWishlist+"/"+url.PathEscape(productID), nil)
	if err != nil {
		return false, fmt.Errorf("check wishlist: %w", err)
	}
	rec := decode.AsRecord(body)
	if v, present := rec["exists"]; present {
		return decode.Boolean(v), nil
	}
	return decode.Boolean(rec["in_wishlist"]), nil
}

// Clear empties the wishlist.
func (s *WishlistService) Clear(ctx context.Context) error {
	if _, err := s.api.DeleteJSON(ctx, pathWishlist); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	return nil
}

// Sync pushes locally-stored guest favorite ids to the backend wishlist
// after login. Already-present ids are deduplicated server-side.
func (s *WishlistService) Sync(ctx context.Context, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	if _, err := s.api.PostJSON(ctx, pathWishlist+"/sync", map[string]any{"product_ids": productIDs}); err != nil {
		return fmt.Errorf("sync wishlist: %w", err)
	}
	return nil
}
