package favorites

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validID   = "11111111-1111-1111-1111-111111111111"
	anotherID = "22222222-2222-2222-2222-222222222222"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestValid_FiltersMalformedAndRewrites(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(StorageKey, `["not-a-uuid","`+validID+`"]`))

	store := NewStore(storage, testLogger())
	got := store.Valid()
	assert.Equal(t, []string{validID}, got)

	// The underlying storage was rewritten to contain only the valid id.
	raw, ok := storage.Get(StorageKey)
	require.True(t, ok)
	assert.JSONEq(t, `["`+validID+`"]`, raw)
}

func TestValid_EmptyStorage(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, testLogger())

	got := store.Valid()
	require.NotNil(t, got)
	assert.Empty(t, got)

	// Reading never writes when nothing was stored.
	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)
}

func TestValid_CorruptJSONResets(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(StorageKey, `{broken`))

	store := NewStore(storage, testLogger())
	got := store.Valid()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAddRemoveContains(t *testing.T) {
	store := NewStore(NewMemoryStorage(), testLogger())

	require.NoError(t, store.Add(validID))
	require.NoError(t, store.Add(validID)) // idempotent
	require.NoError(t, store.Add(anotherID))
	assert.True(t, store.Contains(validID))
	assert.True(t, store.Contains(anotherID))
	assert.Len(t, store.Valid(), 2)

	require.NoError(t, store.Remove(validID))
	assert.False(t, store.Contains(validID))
	require.NoError(t, store.Remove(validID)) // absent id is a no-op

	assert.Error(t, store.Add("not-a-uuid"))
}

func TestClear(t *testing.T) {
	storage := NewMemoryStorage()
	store := NewStore(storage, testLogger())
	require.NoError(t, store.Add(validID))

	require.NoError(t, store.Clear())
	_, ok := storage.Get(StorageKey)
	assert.False(t, ok)
	assert.Empty(t, store.Valid())
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	storage := NewFileStorage(path)

	_, ok := storage.Get("missing")
	assert.False(t, ok)

	require.NoError(t, storage.Set("k1", "v1"))
	require.NoError(t, storage.Set("k2", "v2"))

	// A fresh handle sees persisted values.
	again := NewFileStorage(path)
	v, ok := again.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	require.NoError(t, again.Delete("k1"))
	_, ok = again.Get("k1")
	assert.False(t, ok)
	require.NoError(t, again.Delete("k1")) // deleting twice is fine
}

func TestFavoritesOnFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	store := NewStore(NewFileStorage(path), testLogger())

	require.NoError(t, store.Add(validID))
	assert.Equal(t, []string{validID}, store.Valid())
}
