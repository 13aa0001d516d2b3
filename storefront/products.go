package storefront

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/validate"
)

// ProductsService wraps the items resource. All operations hard-fail.
type ProductsService struct {
	api *httpapi.Client
}

// ProductFilter defines the catalog listing filters. Zero values are
// omitted from the query string.
type ProductFilter struct {
	Category string
	Gender   string
	BrandID  string
	StoreID  string
	Color    string
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PerPage  int
}

func (f ProductFilter) values() url.Values {
	q := url.Values{}
	setIf(q, "category", f.Category)
	setIf(q, "gender", f.Gender)
	setIf(q, "brand_id", f.BrandID)
	setIf(q, "store_id", f.StoreID)
	setIf(q, "color", f.Color)
	setIf(q, "q", f.Query)
	if f.MinPrice != nil {
		q.Set("min_price", formatFloat(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", formatFloat(*f.MaxPrice))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

// List returns a page of normalized products and the backend's total
// count.
func (s *ProductsService) List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error) {
	body, err := s.api.GetJSON(ctx, pathItems, filter.values())
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	raw := decode.UnwrapList(body, "items", "products")
	return domain.NormalizeProducts(raw), decode.ListTotal(body, len(raw)), nil
}

// Get returns one normalized product. Single-item envelopes favor "item"
// over "product" over the bare body.
func (s *ProductsService) Get(ctx context.Context, id string) (domain.Product, error) {
	body, err := s.api.GetJSON(ctx, pathItems+"/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return domain.NormalizeProduct(decode.UnwrapItem(body, "item", "product")), nil
}

// CreateProductInput holds the admin payload for creating a product.
type CreateProductInput struct {
	Name       string   `json:"name" validate:"required,min=1"`
	Category   string   `json:"category" validate:"required"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	StorePrice *float64 `json:"-" validate:"omitempty,gte=0"`
	ImageURL   string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Images     []string `json:"images,omitempty"`
	BrandID    string   `json:"brand_id,omitempty"`
	StoreID    string   `json:"store_id,omitempty"`
	Gender     string   `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex kids"`
	Color      string   `json:"color,omitempty"`
}

// payload builds the wire shape. The legacy StorePrice field maps into
// "price" only when no explicit Price is set; an explicit price always
// wins. Preserved as observed against older backend versions.
func (in CreateProductInput) payload() map[string]any {
	p := map[string]any{
		"name":     in.Name,
		"category": in.Category,
	}
	switch {
	case in.Price != nil:
		p["price"] = *in.Price
	case in.StorePrice != nil:
		p["price"] = *in.StorePrice
	}
	putIf(p, "image_url", in.ImageURL)
	if len(in.Images) > 0 {
		p["images"] = in.Images
	}
	putIf(p, "brand_id", in.BrandID)
	putIf(p, "store_id", in.StoreID)
	putIf(p, "gender", in.Gender)
	putIf(p, "color", in.Color)
	return p
}

// Create submits a new product and returns the normalized result.
func (s *ProductsService) Create(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	body, err := s.api.PostJSON(ctx, pathItems, in.payload())
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return domain.NormalizeProduct(decode.UnwrapItem(body, "item", "product")), nil
}

// UpdateProductInput holds a partial product update; nil fields are left
// untouched by the backend.
type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Category *string  `json:"category,omitempty"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ImageURL *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	Gender   *string  `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex kids"`
	Color    *string  `json:"color,omitempty"`
}

// Update submits a partial edit and returns the normalized result.
func (s *ProductsService) Update(ctx context.Context, id string, in UpdateProductInput) (domain.Product, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	body, err := s.api.PatchJSON(ctx, pathItems+"/"+url.PathEscape(id), in)
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product %s: %w", id, err)
	}
	return domain.NormalizeProduct(decode.UnwrapItem(body, "item", "product")), nil
}

// Delete removes a product.
func (s *ProductsService) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteJSON(ctx, pathItems+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func putIf(p map[string]any, key, value string) {
	if value != "" {
		p[key] = value
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
