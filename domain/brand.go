package domain

import (
	"github.com/utafrali/StorefrontGo/decode"
)

// Brand is a normalized product brand.
type Brand struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	LogoURL      *string `json:"logo_url,omitempty"`
	Description  *string `json:"description,omitempty"`
	ProductCount int     `json:"product_count"`
}

// NormalizeBrand maps a raw record of uncertain shape to a Brand.
func NormalizeBrand(raw any) Brand {
	rec := decode.AsRecord(raw)

	b := Brand{}
	b.ID, _ = decode.FirstString(rec, "id", "brand_id", "brandId")
	b.Name, _ = decode.FirstString(rec, "name", "title")
	b.Slug, _ = decode.FirstString(rec, "slug")

	if v, ok := decode.FirstString(rec, "logo_url", "logo", "logoUrl"); ok {
		b.LogoURL = &v
	}
	if v, ok := decode.FirstString(rec, "description"); ok {
		b.Description = &v
	}
	if n, ok := decode.FirstNumber(rec, "product_count", "products_count", "productCount"); ok {
		b.ProductCount = int(n)
	}
	return b
}

// NormalizeBrands maps each element of a raw list to a Brand. The result
// is never nil.
func NormalizeBrands(raw []any) []Brand {
	out := make([]Brand, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeBrand(v))
	}
	return out
}
