package storefront

import (
	"context"
	"fmt"

	"github.com/utafrali/StorefrontGo/decode"
	"github.com/utafrali/StorefrontGo/httpapi"
	"github.com/utafrali/StorefrontGo/session"
	"github.com/utafrali/StorefrontGo/validate"
)

// AuthService wraps the auth endpoints. Login writes the token pair into
// the session store; logout and a backend 401 clear it. All operations
// hard-fail.
type AuthService struct {
	api    *httpapi.Client
	tokens session.TokenStore
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1"`
}

// Login authenticates and stores the returned token pair. The parsed
// (unverified) claims are returned for immediate UI routing.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*session.UserClaims, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	body, err := s.api.PostJSON(ctx, pathAuth+"/login", creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	access, refresh := extractTokenPair(body)
	if access == "" {
		return nil, fmt.Errorf("login: response carried no access token")
	}
	if err := s.tokens.SetTokens(access, refresh); err != nil {
		return nil, fmt.Errorf("login: store tokens: %w", err)
	}

	claims, err := session.ParseUserClaims(access)
	if err != nil {
		// Opaque tokens still authenticate; routing falls back to the
		// profile endpoint.
		return nil, nil
	}
	return claims, nil
}

// Register creates an account and logs it in when the backend returns a
// token pair directly.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	body, err := s.api.PostJSON(ctx, pathAuth+"/register", in)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if access, refresh := extractTokenPair(body); access != "" {
		if err := s.tokens.SetTokens(access, refresh); err != nil {
			return fmt.Errorf("register: store tokens: %w", err)
		}
	}
	return nil
}

// Refresh exchanges the stored refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context) error {
	refresh := s.tokens.RefreshToken()
	if refresh == "" {
		return fmt.Errorf("refresh: no refresh token stored")
	}

	body, err := s.api.PostJSON(ctx, pathAuth+"/refresh", map[string]any{"refresh_token": refresh})
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	access, newRefresh := extractTokenPair(body)
	if access == "" {
		return fmt.Errorf("refresh: response carried no access token")
	}
	if newRefresh == "" {
		newRefresh = refresh
	}
	if err := s.tokens.SetTokens(access, newRefresh); err != nil {
		return fmt.Errorf("refresh: store tokens: %w", err)
	}
	return nil
}

// Logout invalidates the session server-side, then clears local tokens.
// Local state is cleared even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	_, apiErr := s.api.PostJSON(ctx, pathAuth+"/logout", nil)
	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("logout: clear tokens: %w", err)
	}
	if apiErr != nil {
		return fmt.Errorf("logout: %w", apiErr)
	}
	return nil
}

// extractTokenPair pulls the token pair out of an auth response,
// tolerating both flat and {data: {...}} envelopes and both snake_case
// and camelCase field names.
func extractTokenPair(body any) (access, refresh string) {
	rec := decode.UnwrapItem(body, "data", "tokens")
	access, _ = decode.FirstString(rec, "access_token", "accessToken", "token")
	refresh, _ = decode.FirstString(rec, "refresh_token", "refreshToken")
	return access, refresh
}
