package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// WishlistItem is a normalized entry in a user's wishlist. The backend has
// served wishlist items both as flat records and as thin wrappers around a
// nested product record; the normalizer accepts either.
type WishlistItem struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	Name        string            `json:"name"`
	VariantID   *string           `json:"variant_id,omitempty"`
	VariantName *string           `json:"variant_name,omitempty"`
	Quantity    int               `json:"quantity"`
	AddedAt     time.Time         `json:"added_at"`
	InStock     *bool             `json:"in_stock,omitempty"`
	Price       *float64          `json:"price,omitempty"`
	Currency    *string           `json:"currency,omitempty"`
	ImageURL    string            `json:"image_url"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// NormalizeWishlistItem maps a raw record of uncertain shape to a
// WishlistItem. When the backend provides no dedicated item id, the
// product id doubles as the item id. Quantity defaults to 1 and the
// added-at timestamp defaults to now.
func NormalizeWishlistItem(raw any) WishlistItem {
	rec := decode.AsRecord(raw)
	product, _ := decode.Record(rec, "product")

	item := WishlistItem{}

	item.ProductID, _ = decode.FirstString(rec, "product_id", "productId")
	if item.ProductID == "" {
		item.ProductID, _ = decode.FirstString(product, "id", "product_id")
	}

	item.ID, _ = decode.FirstString(rec, "id", "item_id", "itemId")
	if item.ID == "" {
		item.ID = item.ProductID
	}

	item.Name, _ = decode.FirstString(rec, "name", "title")
	if item.Name == "" {
		item.Name, _ = decode.FirstString(product, "name", "title")
	}

	if v, ok := decode.FirstString(rec, "variant_id", "variantId"); ok {
		item.VariantID = &v
	}
	if v, ok := decode.FirstString(rec, "variant_name", "variantName", "variant"); ok {
		item.VariantName = &v
	}

	item.Quantity = 1
	if n, ok := decode.FirstNumber(rec, "quantity", "qty"); ok && n > 0 {
		item.Quantity = int(n)
	}

	item.AddedAt = timeOrNow(rec, "added_at", "addedAt", "created_at", "createdAt")

	if v := firstPresent(rec, "in_stock", "inStock"); v != nil {
		b := decode.Boolean(v)
		item.InStock = &b
	} else if v := firstPresent(product, "in_stock", "inStock"); v != nil {
		b := decode.Boolean(v)
		item.InStock = &b
	}

	if f, ok := decode.FirstNumber(rec, "price", "price_at_add", "priceAtAdd"); ok {
		item.Price = &f
	} else if f, ok := decode.FirstNumber(product, "price"); ok {
		item.Price = &f
	}
	if v, ok := decode.FirstString(rec, "currency"); ok {
		item.Currency = &v
	}

	item.ImageURL, _ = decode.FirstString(rec, "image_url", "image", "imageUrl")
	if item.ImageURL == "" {
		item.ImageURL, _ = decode.FirstString(product, "image_url", "image", "main_image")
	}

	item.Attributes = decode.StringMap(firstPresent(rec, "attributes", "options"))

	return item
}

// NormalizeWishlistResponse unwraps a wishlist list response body and
// normalizes every entry. List envelopes favor "items" over the legacy
// "wishlist" wrapper over a bare array. The result is never nil.
func NormalizeWishlistResponse(body any) []WishlistItem {
	raw := decode.UnwrapList(body, "items", "wishlist", "products")
	out := make([]WishlistItem, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeWishlistItem(v))
	}
	return out
}
