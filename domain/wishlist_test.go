package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWishlistItem_FlatRecord(t *testing.T) {
	before := time.Now().UTC()
	item := NormalizeWishlistItem(map[string]any{
		"product_id":   "p1",
		"price_at_add": "19.99",
		"store_id":     "s1",
	})

	assert.Equal(t, "p1", item.ProductID)
	// No dedicated item id: the product id doubles as the item id.
	assert.Equal(t, "p1", item.ID)
	require.NotNil(t, item.Price)
	assert.Equal(t, 19.99, *item.Price)
	assert.Equal(t, 1, item.Quantity)
	assert.False(t, item.AddedAt.Before(before.Add(-time.Second)))
	assert.False(t, item.AddedAt.After(time.Now().UTC().Add(time.Second)))
}

func TestNormalizeWishlistItem_NestedProduct(t *testing.T) {
	item := NormalizeWishlistItem(map[string]any{
		"id": "w1",
		"product": map[string]any{
			"id":        "p2",
			"title":     "Jacket",
			"price":     float64(120),
			"image_url": "https://cdn.example.com/j.jpg",
			"in_stock":  true,
		},
		"quantity": float64(2),
		"added_at": "2025-06-01T10:00:00Z",
	})

	assert.Equal(t, "w1", item.ID)
	assert.Equal(t, "p2", item.ProductID)
	assert.Equal(t, "Jacket", item.Name)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Price)
	assert.Equal(t, float64(120), *item.Price)
	assert.Equal(t, "https://cdn.example.com/j.jpg", item.ImageURL)
	require.NotNil(t, item.InStock)
	assert.True(t, *item.InStock)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), item.AddedAt)
}

func TestNormalizeWishlistItem_NamePrecedence(t *testing.T) {
	item := NormalizeWishlistItem(map[string]any{
		"name":  "Top",
		"title": "Shadowed",
		"product": map[string]any{
			"name": "Nested",
		},
	})
	assert.Equal(t, "Top", item.Name)

	item = NormalizeWishlistItem(map[string]any{
		"product": map[string]any{"title": "Nested Title"},
	})
	assert.Equal(t, "Nested Title", item.Name)
}

func TestNormalizeWishlistItem_AttributesCoerced(t *testing.T) {
	item := NormalizeWishlistItem(map[string]any{
		"product_id": "p1",
		"attributes": map[string]any{
			"size":  "M",
			"count": float64(2),
		},
	})
	assert.Equal(t, map[string]string{"size": "M", "count": "2"}, item.Attributes)
}

func TestNormalizeWishlistItem_TotalFunction(t *testing.T) {
	for _, raw := range []any{nil, 42, "string", []any{"x"}} {
		item := NormalizeWishlistItem(raw)
		assert.Equal(t, 1, item.Quantity)
		assert.False(t, item.AddedAt.IsZero())
	}
}

func TestNormalizeWishlistResponse_EnvelopePrecedence(t *testing.T) {
	body := map[string]any{
		"items":    []any{map[string]any{"product_id": "p1"}},
		"wishlist": []any{map[string]any{"product_id": "shadowed"}},
	}
	items := NormalizeWishlistResponse(body)
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)

	// Legacy wrapper when "items" is absent.
	body = map[string]any{
		"wishlist": []any{map[string]any{"product_id": "p2"}},
	}
	items = NormalizeWishlistResponse(body)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// Bare array body.
	items = NormalizeWishlistResponse([]any{map[string]any{"product_id": "p3"}})
	require.Len(t, items, 1)
	assert.Equal(t, "p3", items[0].ProductID)

	// Garbage body yields an empty, non-nil slice.
	items = NormalizeWishlistResponse("garbage")
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestNormalizeCollection_Defaults(t *testing.T) {
	c := NormalizeCollection(map[string]any{
		"id":    "c1",
		"name":  "Summer",
		"emoji": "🌞",
		"items": []any{map[string]any{}, map[string]any{}},
	})
	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, 2, c.ItemCount)
	assert.False(t, c.IsPublic)
	assert.False(t, c.CreatedAt.IsZero())
	assert.False(t, c.UpdatedAt.IsZero())

	c = NormalizeCollection(map[string]any{
		"item_count": float64(7),
		"items":      []any{map[string]any{}},
	})
	assert.Equal(t, 7, c.ItemCount)
}

func TestNormalizeReview_Subject(t *testing.T) {
	r := NormalizeReview(map[string]any{
		"id":       "r1",
		"store_id": "s1",
		"rating":   "4.5",
		"comment":  "fast shipping",
		"verified": true,
	})
	require.NotNil(t, r.StoreID)
	assert.Equal(t, "s1", *r.StoreID)
	assert.Nil(t, r.ProductID)
	assert.Equal(t, 4.5, r.Rating)
	require.NotNil(t, r.Comment)
	assert.Equal(t, "fast shipping", *r.Comment)
	assert.True(t, r.IsVerifiedPurchase)
}

func TestNormalizeReviewStats(t *testing.T) {
	stats := NormalizeReviewStats(map[string]any{
		"avg_rating": float64(4.2),
		"total":      "17",
		"distribution": map[string]any{
			"5": float64(10),
			"4": "5",
			"x": []any{},
		},
	})
	assert.Equal(t, 4.2, stats.AverageRating)
	assert.Equal(t, 17, stats.TotalCount)
	assert.Equal(t, map[string]int{"5": 10, "4": 5}, stats.Distribution)

	// Zero value for garbage input.
	stats = NormalizeReviewStats(nil)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.TotalCount)
}
