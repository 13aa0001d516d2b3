package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/StorefrontGo/apperrors"
	"github.com/utafrali/StorefrontGo/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemoryStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := session.NewMemoryStore()
	client := New(Config{
		BaseURL:         server.URL,
		Timeout:         5 * time.Second,
		MaxConnsPerHost: 10,
	}, tokens, testLogger())
	return client, tokens
}

func TestGetJSON_DecodesBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"items":[{"id":"p1"}]}`))
	})

	body, err := client.GetJSON(context.Background(), "/api/v1/items", nil)
	require.NoError(t, err)
	rec, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rec, "items")
}

func TestGetJSON_QueryEncoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shoes", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`[]`))
	})

	q := url.Values{}
	q.Set("q", "shoes")
	q.Set("page", "2")
	_, err := client.GetJSON(context.Background(), "/api/v1/search", q)
	require.NoError(t, err)
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	// No token: no header.
	_, err := client.GetJSON(context.Background(), "/api/v1/items", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	require.NoError(t, tokens.SetTokens("tok-123", ""))
	_, err = client.GetJSON(context.Background(), "/api/v1/items", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestUnauthorizedClearsTokens(t *testing.T) {
	client, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	})
	require.NoError(t, tokens.SetTokens("stale", "stale-refresh"))

	_, err := client.GetJSON(context.Background(), "/api/v1/users/me", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, "token expired", apperrors.Message(err))

	// Local tokens are cleared; no redirect or retry happens here.
	assert.Empty(t, tokens.AccessToken())
	assert.Empty(t, tokens.RefreshToken())
}

func TestErrorMessageExtractionPrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field wins", `{"message":"from message","error":"from error"}`, "from message"},
		{"error string fallback", `{"error":"from error"}`, "from error"},
		{"structured error object", `{"error":{"code":"BAD","message":"from nested"}}`, "from nested"},
		{"raw body fallback", `upstream exploded`, "status 500: upstream exploded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetJSON(context.Background(), "/api/v1/stores", nil)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.Message(err))
		})
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		target error
	}{
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusBadRequest, apperrors.ErrInvalidInput},
		{http.StatusForbidden, apperrors.ErrForbidden},
		{http.StatusConflict, apperrors.ErrConflict},
		{http.StatusInternalServerError, apperrors.ErrInternal},
	}

	for _, tt := range tests {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
		})

		_, err := client.GetJSON(context.Background(), "/api/v1/x", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.target, "status %d", tt.status)
	}
}

func TestPostJSON_SendsPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Store"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1"}`))
	})

	body, err := client.PostJSON(context.Background(), "/api/v1/stores", map[string]any{"name": "Store"})
	require.NoError(t, err)
	rec, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "s1", rec["id"])
}

func TestDeleteJSON_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	body, err := client.DeleteJSON(context.Background(), "/api/v1/stores/s1")
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestNonJSONSuccessBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`OK`))
	})

	body, err := client.GetJSON(context.Background(), "/health", nil)
	require.NoError(t, err)
	assert.Equal(t, "OK", body)
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.GetJSON(ctx, "/api/v1/items", nil)
	assert.Error(t, err)
}

func TestPostMultipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "logo.png", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "fake-image-bytes", string(data))
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/logo.png"}`))
	})

	body, err := client.PostMultipart(context.Background(), "/api/v1/uploads", "image", "logo.png",
		strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	rec, ok := body.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/logo.png", rec["url"])
}
