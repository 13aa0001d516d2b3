// Package domain defines the normalized entities produced by the API client
// layer, together with their normalizers. Normalizers follow a single
// contract: lenient input, strict output. They accept any raw JSON value,
// never panic, and fill every required field with a documented default
// (empty string, 0, false, current time) when the backend omits it.
//
// Each field is resolved through a prioritized alias list covering the
// backend's historical naming drift (snake_case vs camelCase, nested vs
// flat). Alias order is load-bearing: when two aliases are both present
// with different values, the first-listed alias wins.
package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// BrandRef is a lightweight reference to a brand attached to a product.
type BrandRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceRange holds the price bounds of a multi-variant product.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Product is a normalized catalog product.
type Product struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Price      *float64    `json:"price,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Currency   *string     `json:"currency,omitempty"`
	ImageURL   string      `json:"image_url"`
	Images     []string    `json:"images,omitempty"`
	Brand      *BrandRef   `json:"brand,omitempty"`
	Gender     *string     `json:"gender,omitempty"`
	Color      *string     `json:"color,omitempty"`
	StoreID    *string     `json:"store_id,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// NormalizeProduct maps a raw record of uncertain shape to a Product.
func NormalizeProduct(raw any) Product {
	rec := decode.AsRecord(raw)

	p := Product{}
	p.ID, _ = decode.FirstString(rec, "id", "product_id", "productId", "_id")
	p.Name, _ = decode.FirstString(rec, "name", "title")
	p.Category, _ = decode.FirstString(rec, "category", "type", "category_name")

	if f, ok := decode.FirstNumber(rec, "price", "store_price", "base_price"); ok {
		p.Price = &f
	}
	p.PriceRange = normalizePriceRange(rec)
	if s, ok := decode.FirstString(rec, "currency"); ok {
		p.Currency = &s
	}

	p.Images = normalizeImageList(rec)
	p.ImageURL, _ = decode.FirstString(rec, "image_url", "image", "main_image", "imageUrl")
	if p.ImageURL == "" && len(p.Images) > 0 {
		p.ImageURL = p.Images[0]
	}

	p.Brand = normalizeBrandRef(rec)
	if s, ok := decode.FirstString(rec, "gender"); ok {
		p.Gender = &s
	}
	if s, ok := decode.FirstString(rec, "color", "colour"); ok {
		p.Color = &s
	}
	if s, ok := decode.FirstString(rec, "store_id", "storeId"); ok {
		p.StoreID = &s
	}

	p.CreatedAt = timeOrNow(rec, "created_at", "createdAt")
	return p
}

// NormalizeProducts maps each element of a raw list to a Product. The
// result is never nil.
func NormalizeProducts(raw []any) []Product {
	out := make([]Product, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeProduct(v))
	}
	return out
}

func normalizePriceRange(rec map[string]any) *PriceRange {
	pr, ok := decode.Record(rec, "price_range")
	if !ok {
		pr, ok = decode.Record(rec, "priceRange")
	}
	if !ok {
		// Flat min/max variant used by older list endpoints.
		minV, minOK := decode.FirstNumber(rec, "min_price")
		maxV, maxOK := decode.FirstNumber(rec, "max_price")
		if minOK || maxOK {
			return &PriceRange{Min: minV, Max: maxV}
		}
		return nil
	}

	minV, minOK := decode.FirstNumber(pr, "min", "from")
	maxV, maxOK := decode.FirstNumber(pr, "max", "to")
	if !minOK && !maxOK {
		return nil
	}
	return &PriceRange{Min: minV, Max: maxV}
}

func normalizeImageList(rec map[string]any) []string {
	arr, ok := decode.Array(rec, "images")
	if !ok {
		arr, ok = decode.Array(rec, "image_urls")
	}
	if !ok {
		return nil
	}

	out := make([]string, 0, len(arr))
	for _, v := range arr {
		// Entries may be bare URL strings or {url: ...} records.
		if s, ok := decode.OptionalString(v); ok && s != "" {
			out = append(out, s)
			continue
		}
		if img := decode.AsRecord(v); len(img) > 0 {
			if s, ok := decode.FirstString(img, "url", "image_url", "src"); ok {
				out = append(out, s)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalizeBrandRef(rec map[string]any) *BrandRef {
	if brand, ok := decode.Record(rec, "brand"); ok {
		ref := BrandRef{}
		ref.ID, _ = decode.FirstString(brand, "id", "brand_id")
		ref.Name, _ = decode.FirstString(brand, "name", "title")
		if ref.ID != "" || ref.Name != "" {
			return &ref
		}
		return nil
	}

	id, idOK := decode.FirstString(rec, "brand_id", "brandId")
	name, nameOK := decode.FirstString(rec, "brand_name", "brandName")
	if !idOK && !nameOK {
		return nil
	}
	return &BrandRef{ID: id, Name: name}
}
