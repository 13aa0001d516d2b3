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

// StoresService wraps the store directory resource. All operations
// hard-fail.
type StoresService struct {
	api *httpapi.Client
}

// StoreFilter defines the store directory listing filters.
type StoreFilter struct {
	Query       string
	Verified    *bool
	Recommended *bool
	Page        int
	PerPage     int
}

func (f StoreFilter) values() url.Values {
	q := url.Values{}
	setIf(q, "q", f.Query)
	if f.Verified != nil {
		q.Set("verified", strconv.FormatBool(*f.Verified))
	}
	if f.Recommended != nil {
		q.Set("recommended", strconv.FormatBool(*f.Recommended))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(f.PerPage))
	}
	return q
}

// List returns a page of normalized stores and the backend's total count.
func (s *StoresService) List(ctx context.Context, filter StoreFilter) ([]domain.Store, int, error) {
	body, err := s.api.GetJSON(ctx, pathStores, filter.values())
	if err != nil {
		return nil, 0, fmt.Errorf("list stores: %w", err)
	}
	raw := decode.UnwrapList(body, "items", "stores")
	return domain.NormalizeStores(raw), decode.ListTotal(body, len(raw)), nil
}

// Get returns one normalized store.
func (s *StoresService) Get(ctx context.Context, id string) (domain.Store, error) {
	body, err := s.api.GetJSON(ctx, pathStores+"/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Store{}, fmt.Errorf("get store %s: %w", id, err)
	}
	return domain.NormalizeStore(decode.UnwrapItem(body, "item", "store")), nil
}

// StoreInput holds the admin payload for creating or replacing a store.
type StoreInput struct {
	Name         string `json:"name" validate:"required,min=1"`
	Description  string `json:"description,omitempty"`
	TelegramURL  string `json:"telegram_url,omitempty" validate:"omitempty,url"`
	InstagramURL string `json:"instagram_url,omitempty" validate:"omitempty,url"`
	TiktokURL    string `json:"tiktok_url,omitempty" validate:"omitempty,url"`
	ShippingInfo string `json:"shipping_info,omitempty"`
	LogoURL      string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

// Create submits a new store and returns the normalized result.
func (s *StoresService) Create(ctx context.Context, in StoreInput) (domain.Store, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Store{}, fmt.Errorf("create store: %w", err)
	}
	body, err := s.api.PostJSON(ctx, pathStores, in)
	if err != nil {
		return domain.Store{}, fmt.Errorf("create store: %w", err)
	}
	return domain.NormalizeStore(decode.UnwrapItem(body, "item", "store")), nil
}

// Update replaces a store's editable fields and returns the normalized
// result.
func (s *StoresService) Update(ctx context.Context, id string, in StoreInput) (domain.Store, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Store{}, fmt.Errorf("update store %s: %w", id, err)
	}
	body, err := s.api.PutJSON(ctx, pathStores+"/"+url.PathEscape(id), in)
	if err != nil {
		return domain.Store{}, fmt.Errorf("update store %s: %w", id, err)
	}
	return domain.NormalizeStore(decode.UnwrapItem(body, "item", "store")), nil
}

// Delete removes a store.
func (s *StoresService) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteJSON(ctx, pathStores+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete store %s: %w", id, err)
	}
	return nil
}
