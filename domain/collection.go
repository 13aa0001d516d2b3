package domain

import (
	"time"

	"github.com/utafrali/StorefrontGo/decode"
)

// Collection is a named wishlist folder.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Emoji       *string   `json:"emoji,omitempty"`
	Description *string   `json:"description,omitempty"`
	ItemCount   int       `json:"item_count"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeCollection maps a raw record of uncertain shape to a
// Collection. Both timestamps default to now when absent.
func NormalizeCollection(raw any) Collection {
	rec := decode.AsRecord(raw)

	c := Collection{}
	c.ID, _ = decode.FirstString(rec, "id", "collection_id", "collectionId")
	c.Name, _ = decode.FirstString(rec, "name", "title")

	if v, ok := decode.FirstString(rec, "emoji", "icon"); ok {
		c.Emoji = &v
	}
	if v, ok := decode.FirstString(rec, "description"); ok {
		c.Description = &v
	}

	if n, ok := decode.FirstNumber(rec, "item_count", "items_count", "itemCount"); ok {
		c.ItemCount = int(n)
	} else if arr, ok := decode.Array(rec, "items"); ok {
		c.ItemCount = len(arr)
	}

	c.IsPublic = decode.Boolean(firstPresent(rec, "is_public", "public", "isPublic"))
	c.CreatedAt = timeOrNow(rec, "created_at", "createdAt")
	c.UpdatedAt = timeOrNow(rec, "updated_at", "updatedAt")
	return c
}

// NormalizeCollections maps each element of a raw list to a Collection.
// The result is never nil.
func NormalizeCollections(raw []any) []Collection {
	out := make([]Collection, 0, len(raw))
	for _, v := range raw {
		out = append(out, NormalizeCollection(v))
	}
	return out
}
