package storefront

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/StorefrontGo/apperrors"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestBundle builds the full service bundle against an httptest
// backend.
func newTestBundle(t *testing.T, handler http.Handler) (*Client, *session.MemoryStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokens := session.NewMemoryStore()
	api := httpapi.New(httpapi.Config{
		BaseURL:         server.URL,
		Timeout:         5 * time.Second,
		MaxConnsPerHost: 10,
	}, tokens, testLogger())
	return NewClient(api, testLogger()), tokens
}

// deadBundle builds a bundle whose backend is already gone, for
// transport-failure tests.
func deadBundle(t *testing.T) *Client {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	api := httpapi.New(httpapi.Config{
		BaseURL:         server.URL,
		Timeout:         time.Second,
		MaxConnsPerHost: 2,
	}, session.NewMemoryStore(), testLogger())
	return NewClient(api, testLogger())
}

func TestCreateStore_HardFailCarriesBackendMessage(t *testing.T) {
	client, _ := newTestBundle(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/stores", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"store quota exceeded"}`))
	}))

	_, err := client.Stores.Create(context.Background(), StoreInput{Name: "My Store"})
	require.Error(t, err)
	assert.Equal(t, "store quota exceeded", apperrors.Message(err))
}

func TestCreateStore_LocalValidationFailsBeforeWire(t *testing.T) {
	called := false
	client, _ := newTestBundle(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.Stores.Create(context.Background(), StoreInput{TelegramURL: "not-a-url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name")
	assert.False(t, called, "invalid payload must not reach the backend")
}

func TestLogin_StoresTokensAndReturnsClaims(t *testing.T) {
	client, tokens := newTestBundle(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"access_token":"` + testJWT(t) + `","refresh_token":"r1"}}`))
	}))

	claims, err := client.Auth.Login(context.Background(), Credentials{
		Email:    "u1@example.com",
		Password: "hunter22aa",
	})
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)

	assert.NotEmpty(t, tokens.AccessToken())
	assert.Equal(t, "r1", tokens.RefreshToken())
}

func TestLogout_ClearsTokensEvenOnBackendFailure(t *testing.T) {
	client, tokens := newTestBundle(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	require.NoError(t, tokens.SetTokens("a", "r"))

	err := client.Auth.Logout(context.Background())
	assert.Error(t, err)
	assert.Empty(t, tokens.AccessToken())
	assert.Empty(t, tokens.RefreshToken())
}

// testJWT signs a minimal HS256 token with user_id "u1". The client
// parses claims without verifying, so any signing key works.
func testJWT(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u1",
		"role":    "admin",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestMe_DerivesDashboard(t *testing.T) {
	client, _ := newTestBundle(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"u1","email":"u1@example.com","role":"user","owned_stores":["s1"]}}`))
	}))

	u, err := client.Users.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	assert.Equal(t, "store", u.DashboardType)
}
