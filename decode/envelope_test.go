package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapItem_FirstMatchWins(t *testing.T) {
	body := map[string]any{
		"item":    map[string]any{"id": "from-item"},
		"product": map[string]any{"id": "from-product"},
	}

	got := UnwrapItem(body, "item", "product")
	assert.Equal(t, "from-item", got["id"])
}

func TestUnwrapItem_FallsThroughToLaterKey(t *testing.T) {
	body := map[string]any{
		"item":    "not-a-record",
		"product": map[string]any{"id": "from-product"},
	}

	got := UnwrapItem(body, "item", "product")
	assert.Equal(t, "from-product", got["id"])
}

func TestUnwrapItem_BodyFallback(t *testing.T) {
	body := map[string]any{"id": "bare"}
	got := UnwrapItem(body, "item", "product")
	assert.Equal(t, "bare", got["id"])
}

func TestUnwrapItem_NonObjectYieldsEmptyRecord(t *testing.T) {
	for _, body := range []any{nil, 42, "x", []any{map[string]any{"id": "1"}}} {
		got := UnwrapItem(body, "item")
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestUnwrapList_FirstMatchWins(t *testing.T) {
	body := map[string]any{
		"items":    []any{"a"},
		"products": []any{"b", "c"},
	}

	got := UnwrapList(body, "items", "products")
	assert.Equal(t, []any{"a"}, got)
}

func TestUnwrapList_BareArrayBody(t *testing.T) {
	got := UnwrapList([]any{"a", "b"}, "items")
	assert.Equal(t, []any{"a", "b"}, got)
}

func TestUnwrapList_NoMatchYieldsEmptySlice(t *testing.T) {
	got := UnwrapList(map[string]any{"data": map[string]any{}}, "items")
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = UnwrapList(nil, "items")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListTotal(t *testing.T) {
	// meta.total wins over top-level total.
	body := map[string]any{
		"meta":  map[string]any{"total": float64(120)},
		"total": float64(7),
	}
	assert.Equal(t, 120, ListTotal(body, 10))

	// Top-level total when no meta envelope exists.
	body = map[string]any{"total": "42"}
	assert.Equal(t, 42, ListTotal(body, 10))

	// Item count fallback.
	assert.Equal(t, 10, ListTotal(map[string]any{}, 10))
	assert.Equal(t, 3, ListTotal(nil, 3))
}
