package domain

import (
	"github.com/utafrali/StorefrontGo/decode"
)

// Dashboard type constants, used purely for UI routing.
const (
	DashboardAdmin = "admin"
	DashboardStore = "store"
	DashboardBrand = "brand"
	DashboardBuyer = "buyer"
)

// Role constants.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserContext describes the authenticated user and their ownership
// relationships, normalized from the backend's profile endpoint.
type UserContext struct {
	UserID        string   `json:"user_id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	Roles         []string `json:"roles"`
	OwnedStores   []string `json:"owned_stores"`
	ManagedBrands []string `json:"managed_brands"`
	DashboardType string   `json:"dashboard_type"`
}

// NormalizeUserContext maps a raw profile record to a UserContext. Roles
// accept both a "roles" array and the legacy singular "role" string. The
// dashboard type is derived, never trusted from the payload.
func NormalizeUserContext(raw any) UserContext {
	rec := decode.AsRecord(raw)
	// Some profile endpoints nest the payload under "user".
	if user, ok := decode.Record(rec, "user"); ok {
		rec = user
	}

	u := UserContext{}
	u.UserID, _ = decode.FirstString(rec, "id", "user_id", "userId")
	u.Email, _ = decode.FirstString(rec, "email")
	u.Name, _ = decode.FirstString(rec, "name", "full_name", "username")

	u.Roles = normalizeStringList(rec, "roles")
	if len(u.Roles) == 0 {
		if role, ok := decode.FirstString(rec, "role"); ok {
			u.Roles = []string{role}
		} else {
			u.Roles = []string{RoleUser}
		}
	}

	u.OwnedStores = normalizeStringList(rec, "owned_stores", "store_ids", "stores")
	u.ManagedBrands = normalizeStringList(rec, "managed_brands", "brand_ids", "brands")

	u.DashboardType = DeriveDashboardType(u.Roles, u.OwnedStores, u.ManagedBrands)
	return u
}

// DeriveDashboardType picks the UI dashboard for a user: admin role wins,
// then store ownership, then brand management, then the buyer default.
func DeriveDashboardType(roles, ownedStores, managedBrands []string) string {
	for _, r := range roles {
		if r == RoleAdmin {
			return DashboardAdmin
		}
	}
	if len(ownedStores) > 0 {
		return DashboardStore
	}
	if len(managedBrands) > 0 {
		return DashboardBrand
	}
	return DashboardBuyer
}

// normalizeStringList resolves the first present alias to a string slice.
// Entries may be bare id strings or {id} records. The result is never nil.
func normalizeStringList(rec map[string]any, keys ...string) []string {
	for _, k := range keys {
		arr, ok := decode.Array(rec, k)
		if !ok {
			continue
		}
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := decode.OptionalString(v); ok && s != "" {
				out = append(out, s)
				continue
			}
			if id, ok := decode.FirstString(decode.AsRecord(v), "id"); ok {
				out = append(out, id)
			}
		}
		return out
	}
	return []string{}
}
