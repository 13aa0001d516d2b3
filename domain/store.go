package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// Store is a normalized marketplace store.
type Store struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	TelegramURL   *string   `json:"telegram_url,omitempty"`
	InstagramURL  *string   `json:"instagram_url,omitempty"`
	TiktokURL     *string   `json:"tiktok_url,omitempty"`
	ShippingInfo  *string   `json:"shipping_info,omitempty"`
	LogoURL       *string   `json:"logo_url,omitempty"`
	IsVerified    bool      `json:"is_verified"`
	IsRecommended bool      `json:"is_recommended"`
	ProductCount  int       `json:"product_count"`
	BrandCount    int       `json:"brand_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NormalizeStore maps a raw record of uncertain shape to a Store.
func NormalizeStore(raw any) Store {
	rec := decode.AsRecord(raw)

	s := Store{}
	s.ID, _ = decode.FirstString(rec, "id", "store_id", "storeId")
	s.Name, _ = decode.FirstString(rec, "name", "title", "store_name")

	if v, ok := decode.FirstString(rec, "description", "about"); ok {
		s.Description = &v
	}
	if v, ok := decode.FirstString(rec, "telegram_url", "telegram"); ok {
		s.TelegramURL = &v
	}
	if v, ok := decode.FirstString(rec, "instagram_url", "instagram"); ok {
		s.InstagramURL = &v
	}
	if v, ok := decode.FirstString(rec, "tiktok_url", "tiktok"); ok {
		s.TiktokURL = &v
	}
	if v, ok := decode.FirstString(rec, "shipping_info", "delivery_info"); ok {
		s.ShippingInfo = &v
	}
	if v, ok := decode.FirstString(rec, "logo_url", "logo", "avatar_url"); ok {
		s.LogoURL = &v
	}

	s.IsVerified = decode.Boolean(firstPresent(rec, "is_verified", "verified", "isVerified"))
	s.IsRecommended = decode.Boolean(firstPresent(rec, "is_recommended", "recommended", "isRecommended"))

	if n, ok := decode.FirstNumber(rec, "product_count", "products_count", "productCount"); ok {
		s.ProductCount = int(n)
	}
	if n, ok := decode.FirstNumber(rec, "brand_count", "brands_count", "brandCount"); ok {
		s.BrandCount = int(n)
	}

	s.CreatedAt = timeOrNow(rec, "created_at", "createdAt")
	return s
}

// NormalizeStores maps each element of a raw list to a Store. The result
// is never nil.
func NormalizeStores(raw []any) []Store {
	out := make([]Store, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeStore(v))
	}
	return out
}

// firstPresent returns the value of the first key present in rec,
// regardless of its type. Used for boolean aliases where presence matters
// but the value needs coercion.
func firstPresent(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, present := rec[k]; present {
			return v
		}
	}
	return nil
}
