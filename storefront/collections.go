package storefront

import (
	"context"
	"fmt"
	"net/url"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/domain"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/validate"
)

// CollectionsService wraps the named wishlist folders. All operations
// hard-fail.
type CollectionsService struct {
	api *httpapi.Client
}

// List returns the user's collections.
func (s *CollectionsService) List(ctx context.Context) ([]domain.Collection, error) {
	body, err := s.api.GetJSON(ctx, pathCollections, nil)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	raw := decode.UnwrapList(body, "items", "collections")
	return domain.NormalizeCollections(raw), nil
}

// CollectionInput holds the payload for creating or updating a
// collection.
type CollectionInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	IsPublic    bool   `json:"is_public"`
}

// Create makes a new collection and returns the normalized result.
func (s *CollectionsService) Create(ctx context.Context, in CollectionInput) (domain.Collection, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	body, err := s.api.PostJSON(ctx, pathCollections, in)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return domain.NormalizeCollection(decode.UnwrapItem(body, "item", "collection")), nil
}

// Update replaces a collection's editable fields.
func (s *CollectionsService) Update(ctx context.Context, id string, in CollectionInput) (domain.Collection, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Collection{}, fmt.Errorf("update collection %s: %w", id, err)
	}
	body, err := s.api.PutJSON(ctx, pathCollections+"/"+url.PathEscape(id), in)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("update collection %s: %w", id, err)
	}
	return domain.NormalizeCollection(decode.UnwrapItem(body, "item", "collection")), nil
}

// Delete removes a collection. Items revert to the main wishlist
// server-side.
func (s *CollectionsService) Delete(ctx context.Context, id string) error {
	if _, err := s.api.DeleteJSON(ctx, pathCollections+"/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("delete collection %s: %w", id, err)
	}
	return nil
}

// AddItem places a wishlist item in a collection.
func (s *CollectionsService) AddItem(ctx context.Context, collectionID, productID string) error {
	path := pathCollections + "/" + url.PathEscape(collectionID) + "/items"
	if _, err := s.api.PostJSON(ctx, path, map[string]any{"product_id": productID}); err != nil {
		return fmt.Errorf("add item to collection %s: %w", collectionID, err)
	}
	return nil
}

// RemoveItem takes a wishlist item out of a collection.
func (s *CollectionsService) RemoveItem(ctx context.Context, collectionID, productID string) error {
	path := pathCollections + "/" + url.PathEscape(collectionID) + "/items/" + url.PathEscape(productID)
	if _, err := s.api.DeleteJSON(ctx, path); err != nil {
		return fmt.Errorf("remove item from collection %s: %w", collectionID, err)
	}
	return nil
}
