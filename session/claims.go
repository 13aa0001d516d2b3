package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are the claims the backend embeds in access tokens.
type UserClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// ParseUserClaims extracts claims from an access token WITHOUT verifying
// the signature. Verification is backend-owned; the client only reads
// claims for UI routing (role, dashboard selection) and must never treat
// them as authorization.
func ParseUserClaims(token string) (*UserClaims, error) {
	claims := &UserClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	if claims.UserID == "" && claims.Subject != "" {
		claims.UserID = claims.Subject
	}
	if len(claims.Roles) == 0 && claims.Role != "" {
		claims.Roles = []string{claims.Role}
	}
	return claims, nil
}
