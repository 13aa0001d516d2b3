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

// BrandsService wraps the brands resource. All operations hard-fail.
type BrandsService struct {
	api *httpapi.Client
}

// List returns all brands, optionally paginated.
func (s *BrandsService) List(ctx context.Context, page, perPage int) ([]domain.Brand, int, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	body, err := s.api.GetJSON(ctx, pathBrands, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}
	raw := decode.UnwrapList(body, "items", "brands")
	return domain.NormalizeBrands(raw), decode.ListTotal(body, len(raw)), nil
}

// Get returns one normalized brand.
func (s *BrandsService) Get(ctx context.Context, id string) (domain.Brand, error) {
	body, err := s.api.GetJSON(ctx, pathBrands+"/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("get brand %s: %w", id, err)
	}
	return domain.NormalizeBrand(decode.UnwrapItem(body, "item", "brand")), nil
}

// BrandInput holds the admin payload for creating or replacing a brand.
type BrandInput struct {
	Name        string `json:"name" validate:"required,min=1"`
	Slug        string `json:"slug,omitempty"`
	LogoURL     string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// Create submits a new brand and returns the normalized result.
func (s *BrandsService) Create(ctx context.Context, in BrandInput) (domain.Brand, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Brand{}, fmt.Errorf("create brand: %w", err)
	}
	body, err := s.api.PostJSON(ctx, pathBrands, in)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("create brand: %w", err)
	}
	return domain.NormalizeBrand(decode.UnwrapItem(body, "item", "brand")), nil
}

// Update replaces a brand's editable fields.
func (s *BrandsService) Update(ctx context.Context, id string, in BrandInput) (domain.Brand, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Brand{}, fmt.Errorf("update brand %s: %w", id, err)
	}
	body, err := s.api.PutJSON(ctx, pathBrands+"/"+url.PathEscape(id), in)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("update brand %s: %w", id, err)
	}
	return domain.NormalizeBrand(decode.UnwrapItem(body, "item", "brand")), nil
}

// Delete removes a brand.
func (s *BrandsService) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteJSON(ctx, pathBrands+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete brand %s: %w", id, err)
	}
	return nil
}
