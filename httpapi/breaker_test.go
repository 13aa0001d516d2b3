package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/StorefrontGo/session"
)

func newBreakerClient(t *testing.T, handler http.HandlerFunc, cfg BreakerConfig) *BreakerClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(Config{
		BaseURL:         server.URL,
		Timeout:         2 * time.Second,
		MaxConnsPerHost: 10,
	}, session.NewMemoryStore(), testLogger())
	return NewBreakerClient(client, cfg, testLogger())
}

func TestBreaker_PassesThroughWhenHealthy(t *testing.T) {
	bc := newBreakerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}, DefaultBreakerConfig("test"))

	body, err := bc.GetJSON(context.Background(), "/api/v1/recommendations", nil)
	require.NoError(t, err)
	assert.NotNil(t, body)
	assert.Equal(t, gobreaker.StateClosed, bc.State())
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	var calls int32
	cfg := BreakerConfig{
		Name:         "test-open",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  3,
	}
	bc := newBreakerClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}, cfg)

	for i := 0; i < 5; i++ {
		_, err := bc.GetJSON(context.Background(), "/api/v1/recommendations", nil)
		assert.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, bc.State())

	// Open circuit rejects without touching the backend.
	before := atomic.LoadInt32(&calls)
	_, err := bc.GetJSON(context.Background(), "/api/v1/recommendations", nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, before, atomic.LoadInt32(&calls))
}

func TestBreaker_FallbackOnOpenCircuit(t *testing.T) {
	cfg := BreakerConfig{
		Name:         "test-fallback",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  2,
	}
	bc := newBreakerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}, cfg).WithFallback(func(ctx context.Context, err error) (any, error) {
		return map[string]any{"items": []any{}}, nil
	})

	for i := 0; i < 4; i++ {
		_, _ = bc.GetJSON(context.Background(), "/api/v1/recommendations", nil)
	}
	require.Equal(t, gobreaker.StateOpen, bc.State())

	body, err := bc.GetJSON(context.Background(), "/api/v1/recommendations", nil)
	require.NoError(t, err)
	rec, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rec, "items")
}
